package ws

import (
	"context"
	"time"
)

// SubscribeMarketData подписывается на стакан и ленту сделок по паре.
func (w *Client) SubscribeMarketData(ctx context.Context, pair string) error {
	w.pair = pair
	w.mdReqID = time.Now().UnixMilli()

	msg := marketDataRequest{
		MsgType:                 "V",
		MDReqID:                 w.mdReqID,
		SubscriptionRequestType: "1",
		MarketDepth:             0,
		MDUpdateType:            "1",
		MDEntryTypes:            []string{"0", "1", "2"},
		Instruments:             []string{pair},
	}

	return w.conn.WriteJSON(msg)
}
