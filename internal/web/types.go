package web

type NightSummary struct {
	ID        string `json:"id"`
	ShareCode string `json:"share_code"`
	Rounds    int    `json:"rounds"`
	Completed int    `json:"completed"`
}
