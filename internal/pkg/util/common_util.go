package util

import (
	"math"
	"time"
)

// Round1 四舍五入保留 1 位小数
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// DateOf 取服务器本地时区的日历日（零点）
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Today 当前日历日
func Today() time.Time {
	return DateOf(time.Now())
}

// DayBounds 返回某个日历日的起止时间，右开区间
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := DateOf(date)
	return start, start.AddDate(0, 0, 1)
}
