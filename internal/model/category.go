package model

// Category 题目分类，仅由初始数据创建
type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Type string `gorm:"column:type;size:255;not null" json:"type"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryMap 按 id -> type 输出
func CategoryMap(categories []Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
