package discount

// ValidateRange 校验折扣自身数据
// 先校验价格与区间合法性,再做重叠检查(调用方负责)
func ValidateRange(d *Discount) error {
	if d.DiscountPrice < 0 {
		return ErrInvalidPrice
	}
	if !d.Range.IsValid() {
		return ErrInvalidDateRange
	}
	return nil
}

// CheckOverlap 校验候选折扣与同书已有折扣是否重叠
// existing应为同一本书的全部折扣;更新时通过excludeID排除自身。
// 必须在持有行锁的事务内调用,否则并发创建会绕过校验
func CheckOverlap(candidate *Discount, existing []*Discount, excludeID uint) error {
	for _, e := range existing {
		if excludeID != 0 && e.ID == excludeID {
			continue
		}
		if candidate.Range.Overlaps(e.Range) {
			return ErrDiscountOverlap
		}
	}
	return nil
}
