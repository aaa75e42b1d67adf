package common

// AuthorizationHeaderName is the HTTP header used to carry the access token
// on outbound requests ("Bearer <token>").
const AuthorizationHeaderName = "Authorization"

// ConflictErrorMessage is the exact message the backend returns for a
// validation that was already decided by another agent.
const ConflictErrorMessage = "Already validated"
