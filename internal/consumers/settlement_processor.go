package consumers

import (
	"log"

	"tutorhub-service/internal/models"
	"tutorhub-service/internal/services"
	"tutorhub-service/internal/tasks"
	"tutorhub-service/pkg/common"

	"gorm.io/gorm"
)

type SettlementProcessor struct {
	DB     *gorm.DB
	Helper *services.HelperService
	Wallet *services.WalletService
}

func NewSettlementProcessor(db *gorm.DB, helper *services.HelperService, wallet *services.WalletService) *SettlementProcessor {
	return &SettlementProcessor{DB: db, Helper: helper, Wallet: wallet}
}

// ProcessBookingSettlement credits the faculty wallet with the net
// earnings of one completed booking. The settled flag flips at most
// once, so a redelivered task cannot credit twice.
func (p *SettlementProcessor) ProcessBookingSettlement(data tasks.BookingSettlementPayload) error {
	var booking models.Booking
	if err := p.DB.Where("id = ?", data.BookingId).First(&booking).Error; err != nil {
		log.Printf("Settlement: booking %d not found: %v", data.BookingId, err)
		return nil
	}

	if booking.Status != models.BookingCompleted {
		log.Printf("Settlement: booking %d is %s, skipping", booking.ID, booking.Status)
		return nil
	}

	res := p.DB.Model(&models.Booking{}).
		Where("id = ? AND settled = 0", booking.ID).
		UpdateColumn("settled", 1)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("Settlement: booking %d already settled", booking.ID)
		return nil
	}

	fee := p.Helper.PlatformFeePercentage()
	net := booking.PriceAtBooking * (1 - fee/100)

	if err := p.Wallet.Credit(booking.FacultyId, booking.CurrencyAtBooking, net, "Session earnings", common.GenerateTrxNo()); err != nil {
		// Undo the flag so a retry can settle the booking.
		p.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).UpdateColumn("settled", 0)
		return err
	}

	log.Printf("Settlement: credited %.2f %s to faculty %d for booking %d", net, booking.CurrencyAtBooking, booking.FacultyId, booking.ID)
	return nil
}

// ProcessPayoutNotification hands an approved withdrawal to the payout
// desk. The wallet was already debited at approval time; this step
// only surfaces the payout destination.
func (p *SettlementProcessor) ProcessPayoutNotification(data tasks.PayoutNotificationPayload) error {
	var request models.WithdrawalRequest
	if err := p.DB.Where("id = ?", data.RequestId).First(&request).Error; err != nil {
		log.Printf("Payout: request %d not found: %v", data.RequestId, err)
		return nil
	}

	if request.Status != models.WithdrawalApproved {
		log.Printf("Payout: request %d is %s, skipping", request.ID, request.Status)
		return nil
	}

	details, err := request.Details()
	if err != nil {
		log.Printf("Payout: request %d has malformed payment details: %v", request.ID, err)
		return nil
	}

	switch details.Method {
	case models.PayoutMethodPaypal:
		log.Printf("Payout: request %d, %.2f %s via PayPal to %s", request.ID, request.Amount, request.Currency, details.PaypalEmail)
	case models.PayoutMethodBank:
		log.Printf("Payout: request %d, %.2f %s via bank transfer to account %s", request.ID, request.Amount, request.Currency, maskAccount(details.BankAccountNumber))
	default:
		log.Printf("Payout: request %d has unknown payout method %q", request.ID, details.Method)
	}

	return nil
}

func maskAccount(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "****" + number[len(number)-4:]
}
