package ranking

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// 月报四个榜单共用的排序、名次、开窗逻辑。
// 开窗规则：条目数超过阈值时只保留前 20 名，第 21 位放一个省略行，
// 再接末尾 3 名（名次保持 n-2..n）；不超过阈值则全量展示。

const (
	TopKeep    = 20 // 开窗后保留的头部名次数
	BottomKeep = 3  // 开窗后保留的尾部名次数

	// SingleTurnWindow 单趟榜开窗阈值
	SingleTurnWindow = 23
	// RewardPenaltyWindow 奖罚榜开窗阈值
	RewardPenaltyWindow = 24
)

// Item 榜单条目
type Item struct {
	VehicleID  uint64
	VehicleNo  string
	Value      decimal.Decimal
	TurnSlot   int       // 单趟榜：槽位 1-5
	StatDate   time.Time // 奖罚榜：记录日期
	Rank       int
	IsEllipsis bool
}

// SortDesc 按金额降序，金额相同按车牌编号升序（并列时的稳定次序，见月报口径说明）
func SortDesc(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Value.Equal(items[j].Value) {
			return items[i].Value.GreaterThan(items[j].Value)
		}
		return items[i].VehicleNo < items[j].VehicleNo
	})
}

// SortSigned 奖罚榜排序：正数在前、非正数在后，组内按绝对值降序
func SortSigned(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := items[i].Value.IsPositive(), items[j].Value.IsPositive()
		if pi != pj {
			return pi
		}
		ai, aj := items[i].Value.Abs(), items[j].Value.Abs()
		if !ai.Equal(aj) {
			return ai.GreaterThan(aj)
		}
		return items[i].VehicleNo < items[j].VehicleNo
	})
}

// Number 按当前顺序编名次 1..n
func Number(items []Item) {
	for i := range items {
		items[i].Rank = i + 1
	}
}

// Window 超过阈值时开窗：前 20 + 省略行 + 末尾 3。名次沿用全量编号
func Window(items []Item, threshold int) []Item {
	if len(items) <= threshold {
		return items
	}
	out := make([]Item, 0, TopKeep+1+BottomKeep)
	out = append(out, items[:TopKeep]...)
	out = append(out, Item{Rank: TopKeep + 1, IsEllipsis: true})
	out = append(out, items[len(items)-BottomKeep:]...)
	return out
}
