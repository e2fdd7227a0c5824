package impl

import (
	"io"
	"log/slog"

	"tuikigai/config"
	"tuikigai/internal/domain/entity"
	"tuikigai/internal/usecase"

	"github.com/shopspring/decimal"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		MercadoPago: &config.MercadoPagoConfig{
			BackURLBase: "https://tuikigai.co",
		},
		Checkout: &config.CheckoutConfig{
			PersonalPrice: decimal.NewFromInt(80000),
			GiftPrice:     decimal.NewFromInt(95000),
			Currency:      "COP",
			PromoCodes:    []string{"IKIGAI2024", "ALIANZA-ANDES"},
		},
	}
}

func validPersonalIntent() *usecase.PurchaseIntent {
	return &usecase.PurchaseIntent{
		Kind:          entity.PurchaseKindPersonal,
		BuyerName:     "Laura",
		BuyerLastName: "Gómez",
		BuyerEmail:    "laura@example.com",
		BuyerIDType:   entity.IDTypeCC,
		BuyerIDNumber: "1020304050",
		BuyerPhone:    "+57 3001234567",
		BuyerCity:     "Bogotá",
		BuyerAddress:  "Calle 1 # 2-3",
		PersonType:    entity.PersonTypeNatural,
		Answers: entity.IkigaiAnswers{
			Love:    "enseñar",
			Talent:  "escuchar",
			Need:    "educación",
			Payment: "consultoría",
		},
	}
}

func validGiftIntent() *usecase.PurchaseIntent {
	intent := validPersonalIntent()
	intent.Kind = entity.PurchaseKindGift
	intent.GiftEmail = "amiga@example.com"
	intent.GiftMessage = "Encuentra tu ikigai"

	return intent
}

func validPromoIntent() *usecase.PurchaseIntent {
	return &usecase.PurchaseIntent{
		Kind:          entity.PurchaseKindPromoCode,
		BuyerName:     "Laura",
		BuyerLastName: "Gómez",
		BuyerEmail:    "laura@example.com",
		BuyerCity:     "Bogotá",
		PromoCode:     "IKIGAI2024",
	}
}
