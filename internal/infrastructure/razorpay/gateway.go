package razorpay

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
	"github.com/shopspring/decimal"

	"github.com/jcastellanos/sweetshop-api/internal/application/payment"
)

var _ payment.OrderGateway = (*Gateway)(nil)

// Gateway adaptador del puerto OrderGateway sobre el SDK de Razorpay.
type Gateway struct {
	client *razorpay.Client
	secret string
}

// NewGateway construye el adaptador con las credenciales de la cuenta.
func NewGateway(key, secret string) *Gateway {
	return &Gateway{client: razorpay.NewClient(key, secret), secret: secret}
}

// CreateOrder crea la orden remota. Razorpay trabaja en paise, así que el
// monto se multiplica por 100 antes de enviarlo.
func (g *Gateway) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (string, map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   amount.Mul(decimal.NewFromInt(100)).IntPart(),
		"currency": currency,
		"receipt":  receipt,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", nil, fmt.Errorf("crear orden razorpay: %w", err)
	}
	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", nil, fmt.Errorf("respuesta de razorpay sin id de orden")
	}
	return orderID, order, nil
}

// VerifySignature valida la firma HMAC-SHA256 sobre "orderID|paymentID"
// con el secreto de la cuenta, en el servidor.
func (g *Gateway) VerifySignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, g.secret)
}
