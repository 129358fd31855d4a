package types

type DateTimeInfo struct {
	FullDatetime  string `json:"full_datetime"`
	DateISO       string `json:"date_iso"`
	TimeISO       string `json:"time_iso"`
	DateYMD       string `json:"date_ymd"`
	DayOfWeek     string `json:"day_of_week"`
	DayOfWeekKR   string `json:"day_of_week_kr"`
	Timezone      string `json:"timezone"`
	UnixTimestamp int64  `json:"unix_timestamp"`
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	Day           int    `json:"day"`
	Hour          int    `json:"hour"`
	Minute        int    `json:"minute"`
	Second        int    `json:"second"`
}
