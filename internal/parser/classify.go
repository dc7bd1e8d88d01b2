package parser

import "strings"

// Kind classifies a statement by its leading keyword.
type Kind int

const (
	KindUnknown  Kind = iota // empty or comment-only statement
	KindCreate               // CREATE ...
	KindDrop                 // DROP ...
	KindInsert               // INSERT ...
	KindUpdate               // UPDATE ...
	KindDelete               // DELETE ...
	KindSelect               // SELECT ...
	KindBegin                // BEGIN [TRANSACTION]
	KindCommit               // COMMIT
	KindRollback             // ROLLBACK
	KindOther                // anything else
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindDrop:
		return "drop"
	case KindInsert:
		return "insert"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	case KindSelect:
		return "select"
	case KindBegin:
		return "begin"
	case KindCommit:
		return "commit"
	case KindRollback:
		return "rollback"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Classify determines the statement kind from its beginning keyword.
// ExtractBeginning passes case through unchanged, so the case folding
// required for comparison happens here on the caller side.
func Classify(code string) Kind {
	switch strings.ToUpper(ExtractBeginning(code)) {
	case "":
		return KindUnknown
	case "CREATE":
		return KindCreate
	case "DROP":
		return KindDrop
	case "INSERT":
		return KindInsert
	case "UPDATE":
		return KindUpdate
	case "DELETE":
		return KindDelete
	case "SELECT":
		return KindSelect
	case "BEGIN":
		return KindBegin
	case "COMMIT":
		return KindCommit
	case "ROLLBACK":
		return KindRollback
	default:
		return KindOther
	}
}
