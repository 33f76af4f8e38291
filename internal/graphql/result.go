package graphql

// Result is the state of a query: exactly one of Loading, Failed or Fetched
type Result interface {
	result()
}

// Loading means the request is still in flight
type Loading struct{}

// Failed means the request could not be completed. Message is meant to be shown to users as is.
type Failed struct {
	Message string
}

// Fetched holds the payload of a successful request, not validated in any way
type Fetched struct {
	Data any
}

func (Loading) result() {}
func (Failed) result()  {}
func (Fetched) result() {}
