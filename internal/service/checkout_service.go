package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cardNumberPattern = regexp.MustCompile(`^\d{13,16}$`)
	cardExpiryPattern = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	cardCVVPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// PaymentInfo 支付卡信息，仅用于校验，校验后即丢弃不落盘
type PaymentInfo struct {
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// CheckoutInput 结算输入
type CheckoutInput struct {
	CreateOrderInput
	Payment *PaymentInfo `json:"payment,omitempty"`
}

// CheckoutService 结算校验服务，在订单引擎之前完成入参校验
type CheckoutService struct {
	now func() time.Time
}

// NewCheckoutService 创建结算校验服务
func NewCheckoutService() *CheckoutService {
	return &CheckoutService{now: time.Now}
}

// Validate 校验结算入参，返回的错误均归类为非法输入
func (s *CheckoutService) Validate(input CheckoutInput) error {
	if strings.TrimSpace(input.UserID) == "" {
		return s.invalid("userId is required")
	}
	if err := s.validateShipping(input.ShippingInfo.FirstName, "firstName"); err != nil {
		return err
	}
	if err := s.validateShipping(input.ShippingInfo.LastName, "lastName"); err != nil {
		return err
	}
	if !emailPattern.MatchString(strings.TrimSpace(input.ShippingInfo.Email)) {
		return s.invalid("email is invalid")
	}
	if err := s.validateShipping(input.ShippingInfo.Address, "address"); err != nil {
		return err
	}
	if err := s.validateShipping(input.ShippingInfo.City, "city"); err != nil {
		return err
	}
	if err := s.validateShipping(input.ShippingInfo.Country, "country"); err != nil {
		return err
	}
	if err := s.validateShipping(input.ShippingInfo.PostalCode, "postalCode"); err != nil {
		return err
	}

	if len(input.Items) == 0 {
		return s.invalid("items must not be empty")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return s.invalid("item quantity must be positive")
		}
		if item.Price.IsNegative() {
			return s.invalid("item price must not be negative")
		}
	}
	if input.TotalAmount.IsNegative() {
		return s.invalid("totalAmount must not be negative")
	}

	if input.Payment != nil {
		return s.validatePayment(*input.Payment)
	}
	return nil
}

func (s *CheckoutService) validateShipping(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return s.invalid(field + " is required")
	}
	return nil
}

func (s *CheckoutService) validatePayment(payment PaymentInfo) error {
	if strings.TrimSpace(payment.CardName) == "" {
		return s.invalid("cardName is required")
	}
	digits := strings.ReplaceAll(strings.TrimSpace(payment.CardNumber), " ", "")
	if !cardNumberPattern.MatchString(digits) {
		return s.invalid("cardNumber must be 13-16 digits")
	}
	if err := s.validateExpiry(strings.TrimSpace(payment.Expiry)); err != nil {
		return err
	}
	if !cardCVVPattern.MatchString(strings.TrimSpace(payment.CVV)) {
		return s.invalid("cvv must be 3-4 digits")
	}
	return nil
}

// validateExpiry 校验 MM/YY 格式且不早于当前月份
func (s *CheckoutService) validateExpiry(expiry string) error {
	matches := cardExpiryPattern.FindStringSubmatch(expiry)
	if matches == nil {
		return s.invalid("expiry must be in MM/YY format")
	}
	month, _ := strconv.Atoi(matches[1])
	year, _ := strconv.Atoi(matches[2])
	if month < 1 || month > 12 {
		return s.invalid("expiry month is invalid")
	}
	now := s.now()
	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	if year < currentYear || (year == currentYear && month < currentMonth) {
		return s.invalid("card is expired")
	}
	return nil
}

func (s *CheckoutService) invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidCheckout, reason)
}
