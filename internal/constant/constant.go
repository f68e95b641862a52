package constant

import "time"

const (
	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"
)

const QUERY_TIMEOUT_DURATION = 10 * time.Second

const (
	JWT_TYPE_ACCESS = "access"
	// The only role an access token can carry.
	ROLE_ADMIN = "admin"
)

// Keys of the two persisted collections.
const (
	COLLECTION_RECORDS    = "atas"
	COLLECTION_SIGNATURES = "assinaturas"
)

const VALIDATION_CODE_LENGTH = 8
