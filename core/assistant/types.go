// Package assistant defines the boundary types exchanged with the remote
// banking assistant service. The transport lives in subpackages (e.g.
// finspeak); this package only describes what a response can carry.
package assistant

// QueryResponse is a single assistant reply to a user utterance.
//
// Absence of a field means the feature is not present for this turn, it is
// never an error on its own. A response with no Text and no verification
// signal is malformed.
type QueryResponse struct {
	// UserText echoes the utterance the backend understood, when it differs
	// from what was sent (e.g. after transcription).
	UserText string

	// Text is the displayable reply body.
	Text string

	// ConfirmationMessage is standalone confirmation prose the backend wants
	// rendered separately from Text.
	ConfirmationMessage string

	// AudioCue is an opaque URI for a spoken rendition of Text. Played by an
	// external collaborator, never interpreted client-side.
	AudioCue string

	// Options are selectable follow-ups. Selecting one re-enters the
	// conversation as a fresh utterance.
	Options []Option

	// Confirmation summarises a pending transaction awaiting explicit
	// approval.
	Confirmation *Confirmation

	// Records carries itemized financial collections attached to this turn.
	Records Records

	// RequiresVerification signals that a one-time passcode must be
	// submitted before the pending action completes. SessionToken identifies
	// the verification session at the backend.
	RequiresVerification bool
	SessionToken         string

	// WorkflowStatus is the backend's workflow phase marker
	// (e.g. "COMPLETED", "WAITING_OTP").
	WorkflowStatus string
}

// IsEmpty reports whether the response carries nothing renderable and no
// verification signal.
func (r QueryResponse) IsEmpty() bool {
	return r.Text == "" && r.ConfirmationMessage == "" && !r.RequiresVerification
}

// Option is a backend-offered selectable follow-up.
type Option struct {
	ID      string
	Display string
	Text    string
}

// Value returns what should be re-submitted when the option is selected:
// the display value, falling back to the ID.
func (o Option) Value() string {
	if o.Display != "" {
		return o.Display
	}
	return o.ID
}

// Confirmation is a structured summary of a pending transfer.
type Confirmation struct {
	Amount            float64
	FromAccount       string
	ToBeneficiary     string
	Mode              string
	NeedsConfirmation bool
}

// Records groups the typed collections a reply can attach.
type Records struct {
	Transactions []Transaction
	Payments     []ScheduledPayment
	Loans        []LoanSummary
	Cards        []CardSummary
}

// IsZero reports whether no collection is present.
func (r Records) IsZero() bool {
	return len(r.Transactions) == 0 && len(r.Payments) == 0 &&
		len(r.Loans) == 0 && len(r.Cards) == 0
}

// Transaction is one ledger line in a transaction history reply.
type Transaction struct {
	Date        string
	Description string
	// Type is "credit" or "debit".
	Type   string
	Amount float64
}

// ScheduledPayment is one upcoming or standing payment.
type ScheduledPayment struct {
	DueDate string
	Payee   string
	Amount  float64
	Status  string
}

// LoanSummary is a condensed view of one loan account.
type LoanSummary struct {
	Type        string
	Outstanding float64
	EMI         float64
	NextDueDate string
}

// CardSummary is a condensed view of one card account.
type CardSummary struct {
	Type           string
	LastFour       string
	Outstanding    float64
	DueDate        string
	AvailableLimit float64
}

// VerificationResult is the reply to a one-time passcode submission.
type VerificationResult struct {
	Text     string
	AudioCue string

	// Celebratory marks a completed challenge for celebratory rendering.
	Celebratory bool
}
