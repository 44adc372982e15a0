// Package models 定义数据模型
package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout 日期存储格式（ISO-8601）
const DateLayout = "2006-01-02"

// Date 日期类型，按 ISO-8601 文本（YYYY-MM-DD）持久化。
// 文本形式的字典序与时间序一致，数据库里的范围比较在
// SQLite 与 PostgreSQL 上行为相同。
type Date struct {
	time.Time
}

// NewDate 创建日期
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf 截取时间的日期部分
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today 当前日期
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate 解析 YYYY-MM-DD 格式的日期
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String 返回 YYYY-MM-DD
func (d Date) String() string {
	return d.Format(DateLayout)
}

// IsZero 是否为零值
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// Before 日期比较
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After 日期比较
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// Equal 日期相等
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// AddDays 返回 n 天后的日期
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time.AddDate(0, 0, n))
}

// DaysUntil 到另一日期的天数（预订的"夜数"）
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time) / (24 * time.Hour))
}

// Value 实现 driver.Valuer，写库时序列化为文本
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan 实现 sql.Scanner，读库时解析回日期
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

// GormDataType 声明数据库列类型
func (Date) GormDataType() string {
	return "date"
}

// MarshalJSON JSON 序列化为 "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON 从 "YYYY-MM-DD" 反序列化
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
