package model

// FeedListOptions is the full filter set for a paginated feed listing. All
// predicates are optional and AND'd together.
type FeedListOptions struct {
	Channels       []string
	TemplateIDs    []string
	SubscriberIDs  []string
	Emails         []string
	Search         string
	TransactionID  string
	TopicKey       string
	Severity       string
	After          string
	Before         string
	Page           int
	Limit          int
}

// SubscriberQuery narrows a listing to a concrete subscriber-id set before
// the feed store is queried.
type SubscriberQuery struct {
	IDs      []string
	Emails   []string
	FreeText string
}

// Empty reports whether no subscriber predicate was supplied.
func (q SubscriberQuery) Empty() bool {
	return len(q.IDs) == 0 && len(q.Emails) == 0 && q.FreeText == ""
}

// NeedsResolution reports whether the listing must resolve subscribers first.
func (o FeedListOptions) NeedsResolution() bool {
	return len(o.SubscriberIDs) > 0 || len(o.Emails) > 0 || o.Search != ""
}
