package blinktrade

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// sendMessage отправляет подписанное сообщение в торговый канал и
// возвращает сырой ответ до нормализации.
func (c *Client) sendMessage(ctx context.Context, msg map[string]any) (rawResponse, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return rawResponse{}, fmt.Errorf("Не удалось подготовить тело запроса: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tapi/v1/message", bytes.NewReader(payload))
	if err != nil {
		return rawResponse{}, fmt.Errorf("Не удалось создать запрос: %w", err)
	}

	nonce := strconv.FormatInt(c.nextNonce(), 10)
	req.Header.Set("APIKey", c.apiKey)
	req.Header.Set("Nonce", nonce)
	req.Header.Set("Signature", sign(c.secret, nonce))
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.New().String()
	c.logEntry().WithFields(logrus.Fields{
		"request_id": requestID,
		"msg_type":   msg["MsgType"],
	}).Debug("Запрос в торговый канал.")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return rawResponse{}, fmt.Errorf("Ошибка запроса: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return rawResponse{}, fmt.Errorf("Не удалось прочитать ответ: %w", err)
	}

	if resp.StatusCode >= 400 {
		return rawResponse{}, fmt.Errorf("Неуспешный статус: %s", resp.Status)
	}

	var out rawResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return rawResponse{}, fmt.Errorf("Не удалось разобрать ответ: %w", err)
	}

	return out, nil
}

func (c *Client) getPublic(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("Не удалось создать запрос: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("Ошибка запроса: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("Не удалось прочитать ответ: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("Неуспешный статус: %s", resp.Status)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("Не удалось разобрать ответ: %w", err)
	}

	return nil
}

func sign(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func (c *Client) logEntry() *logrus.Entry {
	return c.log.WithComponent("blinktrade").WithField("pair", c.Pair())
}
