package entities

// OrderStatus is the lifecycle state of an order. New orders always start
// at StatusPending; every later change goes through the transition table.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipping   OrderStatus = "shipping"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelling OrderStatus = "cancelling"
	StatusCancelled  OrderStatus = "cancelled"
	StatusRejected   OrderStatus = "rejected"
	StatusReturned   OrderStatus = "returned"
	StatusRefunded   OrderStatus = "refunded"
	StatusExchanged  OrderStatus = "exchanged"
)

// transitions lists the reachable next states per status. Resolving a
// cancellation request is the one path not covered here: rejecting it
// restores the status recorded in the cancel request.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusRejected, StatusCancelling},
	StatusProcessing: {StatusShipping, StatusCancelling},
	StatusShipping:   {StatusDelivered, StatusCancelling},
	StatusDelivered:  {StatusReturned, StatusRefunded, StatusExchanged},
	StatusCancelling: {StatusCancelled},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipping, StatusDelivered,
		StatusCancelling, StatusCancelled, StatusRejected,
		StatusReturned, StatusRefunded, StatusExchanged:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s OrderStatus) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// CanTransitionTo reports whether the move from s to target is legal.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Cancellable reports whether a buyer may still request cancellation.
func (s OrderStatus) Cancellable() bool {
	return s.CanTransitionTo(StatusCancelling)
}

// ProofStatus is the review state of a buyer-uploaded payment proof.
type ProofStatus string

const (
	ProofNone     ProofStatus = "none"
	ProofPending  ProofStatus = "pending"
	ProofApproved ProofStatus = "approved"
	ProofRejected ProofStatus = "rejected"
)
