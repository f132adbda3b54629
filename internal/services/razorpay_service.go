package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"tutorhub-service/internal/models"
	"tutorhub-service/pkg/common"

	"gorm.io/gorm"
)

type RazorpayService struct {
	DB     *gorm.DB
	Helper *HelperService
}

func NewRazorpayService(db *gorm.DB, helper *HelperService) *RazorpayService {
	return &RazorpayService{DB: db, Helper: helper}
}

func (s *RazorpayService) settings() (*models.PaymentMethod, error) {
	var pm models.PaymentMethod
	err := s.DB.Where("provider = ?", "razorpay").First(&pm).Error
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

// PublicKey exposes the gateway key id the frontend checkout needs.
func (s *RazorpayService) PublicKey() (string, error) {
	settings, err := s.settings()
	if err != nil {
		return "", errors.New("razorpay has not been configured")
	}
	return settings.PublicKey, nil
}

// CreateOrder registers an order with the gateway. Amount is in the
// currency's minor unit (paise for INR, cents for USD).
func (s *RazorpayService) CreateOrder(amountMinor int64, currency, receipt string) (map[string]interface{}, error) {
	settings, err := s.settings()
	if err != nil {
		return nil, errors.New("razorpay has not been configured")
	}

	payload := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}

	auth := base64.StdEncoding.EncodeToString([]byte(settings.PublicKey + ":" + settings.SecretKey))
	headers := map[string]string{
		"Authorization": "Basic " + auth,
		"Content-Type":  "application/json",
	}

	resp, err := common.Post(fmt.Sprintf("%s/orders", settings.BaseUrl), payload, headers)
	if err != nil {
		return nil, fmt.Errorf("unable to create razorpay order: %w", err)
	}

	order, ok := resp.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected response from razorpay")
	}
	if _, hasErr := order["error"]; hasErr {
		s.logCallback("Order creation rejected", order, 0, receipt)
		return nil, errors.New("razorpay rejected the order")
	}

	return order, nil
}

// VerifyPaymentSignature checks the checkout callback against the
// configured secret.
func (s *RazorpayService) VerifyPaymentSignature(orderId, paymentId, signature string) (bool, error) {
	settings, err := s.settings()
	if err != nil {
		return false, errors.New("razorpay has not been configured")
	}
	return VerifyRazorpaySignature(orderId, paymentId, signature, settings.SecretKey), nil
}

// VerifyRazorpaySignature recomputes the HMAC-SHA256 of
// "orderId|paymentId" and compares it to the signature the checkout
// posted back.
func VerifyRazorpaySignature(orderId, paymentId, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderId + "|" + paymentId))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *RazorpayService) logCallback(response string, data interface{}, status int, transactionId string) {
	reqBody, _ := json.Marshal(data)
	logEntry := models.CallbackLog{
		Request:       string(reqBody),
		Response:      response,
		Status:        status,
		RequestType:   "order",
		TransactionId: transactionId,
		PaymentMethod: "Razorpay",
	}
	s.DB.Create(&logEntry)
}
