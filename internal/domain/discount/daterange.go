package discount

import (
	"time"
)

// DateRange 折扣生效区间
// Start/End为nil表示该方向无界(-∞/+∞),区间为闭区间(按天)
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// TruncateToDay 截断到当天零点
// 边界按天存储(零点),任何时间点参与区间比较前必须先截断,
// 否则结束日当天带时分秒的时刻会落在闭区间之外
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Today 今天的日期(零点)
func Today() time.Time {
	return TruncateToDay(time.Now())
}

// IsValid 区间自身合法性:Start和End都存在时Start不能晚于End
func (r DateRange) IsValid() bool {
	if r.Start == nil || r.End == nil {
		return true
	}
	return !r.Start.After(*r.End)
}

// Contains 日期d是否落在区间内(按天,d先截断到当天零点)
func (r DateRange) Contains(d time.Time) bool {
	d = TruncateToDay(d)
	if r.Start != nil && r.Start.After(d) {
		return false
	}
	if r.End != nil && r.End.Before(d) {
		return false
	}
	return true
}

// Overlaps 两个区间是否相交
// 规则:nil按∓∞代入后,max(start1,start2) <= min(end1,end2)则相交;
// 两个全无界区间必然相交
func (r DateRange) Overlaps(other DateRange) bool {
	// 取两者中较晚的开始时间,nil(-∞)不参与比较
	start := r.Start
	if start == nil || (other.Start != nil && other.Start.After(*start)) {
		start = other.Start
	}

	// 取两者中较早的结束时间
	end := r.End
	if end == nil || (other.End != nil && other.End.Before(*end)) {
		end = other.End
	}

	// 任意一侧仍无界,说明该侧没有约束,必然相交
	if start == nil || end == nil {
		return true
	}
	return !start.After(*end)
}
