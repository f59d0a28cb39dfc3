package blinktrade

import (
	"fmt"
	"strconv"

	"trailbot/internal/models"
)

// normalizeResponse приводит сырой ответ торгового канала к единому виду:
// список ордеров плюс баланс, если он есть в ответе. Плоские записи
// (execution report) всегда идут раньше строк табличного ответа.
func normalizeResponse(resp rawResponse, brokerID int, currency string) ([]models.Order, *models.Balance, error) {
	if resp.Responses == nil {
		return nil, nil, ErrMissingResponses
	}

	if len(resp.Responses) > 0 {
		first := resp.Responses[0]
		if models.OrderStatus(getString(first, "OrdStatus")) == models.OrderStatusRejected {
			return nil, nil, &RejectedError{Raw: first}
		}
	}

	var flat []models.Order
	var grid []models.Order
	var balance *models.Balance

	for _, item := range resp.Responses {
		switch getString(item, "MsgType") {
		case msgTypeExecutionReport:
			flat = append(flat, orderFromRecord(item))
		case msgTypeOrderListResponse:
			rows, err := ordersFromGrid(item)
			if err != nil {
				return nil, nil, err
			}
			grid = append(grid, rows...)
		case msgTypeBalanceResponse:
			b, err := balanceFromRecord(item, brokerID, currency)
			if err != nil {
				return nil, nil, err
			}
			balance = b
		default:
			return nil, nil, &UnknownMsgTypeError{MsgType: getString(item, "MsgType")}
		}
	}

	return append(flat, grid...), balance, nil
}

func orderFromRecord(record map[string]any) models.Order {
	return models.Order{
		OrderID:      getInt64(record, "OrderID"),
		ClOrdID:      getInt64(record, "ClOrdID"),
		ExecID:       getInt64(record, "ExecID"),
		Symbol:       getString(record, "Symbol"),
		Side:         models.OrderSide(getString(record, "Side")),
		Type:         models.OrderType(getString(record, "OrdType")),
		Status:       models.OrderStatus(getString(record, "OrdStatus")),
		ExecType:     getString(record, "ExecType"),
		ExecSide:     getString(record, "ExecSide"),
		TimeInForce:  getString(record, "TimeInForce"),
		RejectReason: getString(record, "OrdRejReason"),
		MsgType:      getString(record, "MsgType"),
		Price:        getInt64(record, "Price"),
		AvgPrice:     getInt64(record, "AvgPx"),
		LastPrice:    getInt64(record, "LastPx"),
		Qty:          getInt64(record, "OrderQty"),
		CumQty:       getInt64(record, "CumQty"),
		LeavesQty:    getInt64(record, "LeavesQty"),
		LastQty:      getInt64(record, "LastShares"),
		CxlQty:       getInt64(record, "CxlQty"),
		Volume:       getInt64(record, "Volume"),
	}
}

// ordersFromGrid разворачивает табличный ответ: заголовок Columns
// сшивается с каждой строкой OrdListGrp в плоскую запись.
func ordersFromGrid(item map[string]any) ([]models.Order, error) {
	rawColumns, _ := item["Columns"].([]any)
	rawRows, _ := item["OrdListGrp"].([]any)

	columns := make([]string, 0, len(rawColumns))
	for _, col := range rawColumns {
		columns = append(columns, fmt.Sprint(col))
	}

	var orders []models.Order
	for _, rawRow := range rawRows {
		row, _ := rawRow.([]any)
		if len(row) != len(columns) {
			return nil, &MalformedGridError{Columns: len(columns), Row: len(row)}
		}

		record := make(map[string]any, len(columns))
		for i, col := range columns {
			record[col] = row[i]
		}
		orders = append(orders, orderFromRecord(record))
	}

	return orders, nil
}

func balanceFromRecord(item map[string]any, brokerID int, currency string) (*models.Balance, error) {
	broker, ok := item[strconv.Itoa(brokerID)].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("Баланс без секции брокера %d.", brokerID)
	}

	return &models.Balance{
		Currency:       fromFiatUnits(int64Value(broker, currency)),
		CurrencyLocked: fromFiatUnits(int64Value(broker, currency+"_locked")),
		Crypto:         fromCryptoUnits(int64Value(broker, "BTC")),
		CryptoLocked:   fromCryptoUnits(int64Value(broker, "BTC_locked")),
	}, nil
}

func getString(record map[string]any, key string) string {
	value, ok := record[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// getInt64 читает числовое поле записи: отсутствующее, пустое или
// нулевое значение даёт nil, чтобы не путать "не прислали" и "ноль".
func getInt64(record map[string]any, key string) *int64 {
	value, ok := record[key]
	if !ok || value == nil {
		return nil
	}

	var parsed int64
	switch v := value.(type) {
	case float64:
		parsed = int64(v)
	case int64:
		parsed = v
	case int:
		parsed = int64(v)
	case string:
		if v == "" {
			return nil
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil
		}
		parsed = n
	default:
		return nil
	}

	if parsed == 0 {
		return nil
	}
	return &parsed
}

func int64Value(record map[string]any, key string) int64 {
	if v := getInt64(record, key); v != nil {
		return *v
	}
	return 0
}
