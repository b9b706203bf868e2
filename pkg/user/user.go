package user

// User is the authenticated identity attached to a request. Authentication
// itself happens outside this service; only the opaque uid matters here,
// as the key of the per-user remote record.
type User struct {
	Uid         string
	DisplayName string
}
