package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

// MidtransGateway charges through the Midtrans Core API. The card token
// obtained by the frontend is passed as the payment method id.
type MidtransGateway struct {
	client coreapi.Client
}

func NewMidtransGateway(serverKey string, production bool) *MidtransGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	var client coreapi.Client
	client.New(serverKey, env)
	return &MidtransGateway{client: client}
}

func (g *MidtransGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	chargeReq := &coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeCreditCard,
		TransactionDetails: midtrans.TransactionDetails{
			// The idempotency key doubles as the order id: Midtrans rejects a
			// second charge for the same order, so a retried completion after
			// an ambiguous timeout cannot double-charge.
			OrderID: req.IdempotencyKey,
			// Midtrans takes whole currency units as int64. Fractional
			// amounts round half up here, so plans sold through this gateway
			// must carry whole-unit prices.
			GrossAmt: req.Amount.Round(0).IntPart(),
		},
		CreditCard: &coreapi.CreditCardDetails{
			TokenID: req.PaymentMethodId,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.IdempotencyKey,
				Price: req.Amount.Round(0).IntPart(),
				Qty:   1,
				Name:  req.Description,
			},
		},
		Metadata: req.Metadata,
	}

	type chargeOutcome struct {
		resp *coreapi.ChargeResponse
		err  *midtrans.Error
	}
	done := make(chan chargeOutcome, 1)
	go func() {
		resp, err := g.client.ChargeTransaction(chargeReq)
		done <- chargeOutcome{resp: resp, err: err}
	}()

	select {
	case <-ctx.Done():
		// The charge may still land on the provider side; the idempotent
		// order id makes a retry safe.
		return nil, &Error{Message: "payment timed out", Cause: ctx.Err()}
	case out := <-done:
		if out.err != nil {
			return nil, &Error{Message: fmt.Sprintf("payment declined: %s", out.err.GetMessage()), Cause: out.err}
		}
		if out.resp.TransactionStatus != "capture" && out.resp.TransactionStatus != "settlement" {
			return nil, &Error{Message: fmt.Sprintf("payment not settled: %s", out.resp.StatusMessage)}
		}
		raw, _ := json.Marshal(out.resp)
		return &ChargeResult{
			TransactionId: out.resp.TransactionID,
			Status:        out.resp.TransactionStatus,
			RawResponse:   raw,
		}, nil
	}
}
