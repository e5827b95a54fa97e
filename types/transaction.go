package types

// TransactionResult represents a mined blockchain transaction.
// It contains the hash of the transaction, the family of the chain it was sent to
// and the raw receipt. Users of this struct should cast RawData to the appropriate type.
type TransactionResult struct {
	Hash        string `json:"hash"`
	ChainFamily string `json:"chainFamily"`
	RawData     any    `json:"rawData"`
}

// NewTransactionResult creates a TransactionResult.
func NewTransactionResult(hash, family string, rawData any) TransactionResult {
	return TransactionResult{
		Hash:        hash,
		ChainFamily: family,
		RawData:     rawData,
	}
}
