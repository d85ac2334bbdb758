// Drives a running instance end to end: creates a checkout, submits a
// payment proof to convert it into an order, fetches the order back and
// then tails the order events topic until interrupted.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/segmentio/kafka-go"
)

var (
	baseURL = flag.String("url", "http://localhost:8080", "service base url")
	secret  = flag.String("secret", "secret", "jwt secret the service was started with")
	brokers = flag.String("brokers", "localhost:9092", "kafka broker")
	topic   = flag.String("topic", "order-events", "order events topic")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	token, err := signToken(*secret, "smoke-user")
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}

	checkoutID, err := createCheckout(ctx, token)
	if err != nil {
		log.Fatalf("failed to create checkout: %v", err)
	}
	log.Printf("checkout created: %s", checkoutID)

	orderID, err := submitProof(ctx, token, checkoutID)
	if err != nil {
		log.Fatalf("failed to submit payment proof: %v", err)
	}
	log.Printf("order created: %s", orderID)

	order, err := getOrder(ctx, token, orderID)
	if err != nil {
		log.Fatalf("failed to fetch order: %v", err)
	}
	log.Printf("order status: %s", order["status"])

	log.Printf("tailing %s, ctrl-c to stop", *topic)
	tailEvents(ctx)
}

func signToken(secret, sub string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	return token.SignedString([]byte(secret))
}

const checkoutBody = `{
	"items": [{
		"product_id": "prod-1",
		"product_variant_id": "var-1",
		"name": "Stellar Tee",
		"price": 150000,
		"options": {"size": "M", "color": "black"},
		"quantity": 2,
		"weight": 200
	}],
	"shipping_details": {
		"name": "Smoke Tester",
		"address": "Jl. Kenanga 1",
		"city": "Jakarta",
		"postal_code": "10110",
		"phone": "081234567890"
	},
	"payment_method": "bank_transfer",
	"total_price": 320000,
	"shipping_cost": 20000,
	"courier": "jne"
}`

func createCheckout(ctx context.Context, token string) (string, error) {
	res, err := call(ctx, token, http.MethodPost, "/checkout", []byte(checkoutBody))
	if err != nil {
		return "", err
	}
	id, _ := res["id"].(string)
	if id == "" {
		return "", fmt.Errorf("no checkout id in response: %v", res)
	}
	return id, nil
}

func submitProof(ctx context.Context, token, checkoutID string) (string, error) {
	body := []byte(`{"proof_image": "uploads/smoke-receipt.jpg", "note": "smoke run"}`)
	res, err := call(ctx, token, http.MethodPost, "/checkout/"+checkoutID+"/payment-proof", body)
	if err != nil {
		return "", err
	}
	id, _ := res["order_id"].(string)
	if id == "" {
		return "", fmt.Errorf("no order id in response: %v", res)
	}
	return id, nil
}

func getOrder(ctx context.Context, token, orderID string) (map[string]any, error) {
	return call(ctx, token, http.MethodGet, "/orders/"+orderID, nil)
}

func call(ctx context.Context, token, method, path string, body []byte) (map[string]any, error) {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, *baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var payload map[string]any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("%s %s: %d %v", method, path, res.StatusCode, payload)
	}
	return payload, nil
}

func tailEvents(ctx context.Context) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{*brokers},
		Topic:   *topic,
		GroupID: "smoke",
	})
	defer reader.Close()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			return
		}
		log.Printf("event %s: %s", msg.Key, msg.Value)
	}
}
