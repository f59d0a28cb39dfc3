package blinktrade

import (
	"context"
	"fmt"

	"trailbot/internal/models"
)

func (c *Client) GetBalance(ctx context.Context) (*models.Balance, error) {
	msg := map[string]any{
		"MsgType":      msgTypeBalance,
		"BalanceReqID": c.nextNonce(),
	}

	resp, err := c.sendMessage(ctx, msg)
	if err != nil {
		return nil, err
	}

	_, balance, err := normalizeResponse(resp, c.brokerID, c.currency)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, fmt.Errorf("Ответ на запрос баланса без секции баланса.")
	}
	return balance, nil
}
