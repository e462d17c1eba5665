package user

// Principal identifies the authenticated caller of a protected endpoint.
type Principal struct {
	Username string
}
