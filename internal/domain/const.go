package domain

const (
	// Webhook event carrying a relayer transaction update
	EventTransactionUpdate = "transaction_update"

	// Status row sources
	SourceWebhook    = "webhook"
	SourceSubmission = "submission"
	SourceReconciler = "reconciler"

	// Default relayer submission parameters
	DefaultGasLimit uint64 = 300000
	DefaultSpeed           = "fast"
)
