// Package entity contains the core business objects of the project.
package entity

// CheckoutState is the position of one purchase attempt inside the checkout
// flow. The state value is owned by the caller (the presentation layer keeps it
// per attempt); the checkout usecase is stateless between calls and only reports
// the state that resulted from each operation.
type CheckoutState string

const (
	// CheckoutStateSelectingOption is the initial state, before a purchase kind is chosen.
	CheckoutStateSelectingOption CheckoutState = "selecting_option"
	// CheckoutStateCollectingDetails gathers buyer details for paid purchases.
	CheckoutStateCollectingDetails CheckoutState = "collecting_details"
	// CheckoutStateSubmitting covers the store-create and gateway calls.
	CheckoutStateSubmitting CheckoutState = "submitting"
	// CheckoutStateRedirecting means the browser must navigate to the gateway URL.
	CheckoutStateRedirecting CheckoutState = "redirecting"
	// CheckoutStateFailed is reached on a store or gateway failure; the user may retry.
	CheckoutStateFailed CheckoutState = "failed"

	// CheckoutStateCollectingPromoDetails gathers redeemer details for the promo branch.
	CheckoutStateCollectingPromoDetails CheckoutState = "collecting_promo_details"
	// CheckoutStateValidatingPromo checks the code against the allow-list.
	CheckoutStateValidatingPromo CheckoutState = "validating_promo"
	// CheckoutStateRedeemed is the terminal state of a successful redemption.
	CheckoutStateRedeemed CheckoutState = "redeemed"
)

// checkoutTransitions is the allowed transition table for a purchase attempt.
var checkoutTransitions = map[CheckoutState][]CheckoutState{
	CheckoutStateSelectingOption:        {CheckoutStateCollectingDetails, CheckoutStateCollectingPromoDetails},
	CheckoutStateCollectingDetails:      {CheckoutStateSubmitting},
	CheckoutStateSubmitting:             {CheckoutStateRedirecting, CheckoutStateFailed},
	CheckoutStateRedirecting:            {}, // Terminal: the browser leaves the page.
	CheckoutStateFailed:                 {CheckoutStateCollectingDetails, CheckoutStateCollectingPromoDetails}, // Retryable.
	CheckoutStateCollectingPromoDetails: {CheckoutStateValidatingPromo},
	CheckoutStateValidatingPromo:        {CheckoutStateRedeemed, CheckoutStateCollectingPromoDetails, CheckoutStateFailed},
	CheckoutStateRedeemed:               {}, // Terminal state.
}

// CanTransition reports whether moving from the current state to next is allowed.
func (s CheckoutState) CanTransition(next CheckoutState) bool {
	for _, allowed := range checkoutTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsTerminal reports whether the attempt can make no further progress.
func (s CheckoutState) IsTerminal() bool {
	return len(checkoutTransitions[s]) == 0
}

// String implements fmt.Stringer for logging.
func (s CheckoutState) String() string {
	return string(s)
}
