package content

// Status is the moderation state attached to community posts and fanart.
// Submissions always start pending; admins move entries to approved or
// rejected. The graph is flat: the store permits re-setting status freely.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Rank is the AUREA fan tier on community posts. Cosmetic segmentation only,
// never an access-control mechanism.
type Rank string

const (
	RankGold    Rank = "gold"
	RankViolet  Rank = "violet"
	RankCrimson Rank = "crimson"
)

func (r Rank) Valid() bool {
	switch r {
	case RankGold, RankViolet, RankCrimson:
		return true
	}
	return false
}
