package dto

type Filter struct {
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
	Category string `query:"category"`
	Search   string `query:"search"`
}
