package types

// ContextUserKey is where the auth middleware stores the verified
// caller id in the gin context.
const ContextUserKey = "user_id"
