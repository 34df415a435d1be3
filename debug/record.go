package debug

import (
	"encoding/json"
	"io"
	"log"
	"phasor/element/phasor"
	"phasor/element/wattmeter"
	"phasor/load"
	"phasor/maths"
	"time"

	"github.com/google/uuid"
)

// 记录条目类型
const (
	KindPhasor      = "phasor"
	KindWattmeter   = "watt"
	KindValue       = "value"
	KindPowerFactor = "pf"
)

// PhasorEntry 相量数据
type PhasorEntry struct {
	Mod float64 `json:"mod"`
	Deg float64 `json:"deg"`
	Rad float64 `json:"rad"`
	Re  float64 `json:"re"`
	Im  float64 `json:"im"`
}

// Entry 单个命名值
type Entry struct {
	Name    string             `json:"name"`
	Kind    string             `json:"kind"`
	Phasor  *PhasorEntry       `json:"phasor,omitempty"`
	Reading *wattmeter.Reading `json:"reading,omitempty"`
	Value   *float64           `json:"value,omitempty"`
	Text    string             `json:"text"`
}

// Record 记录一次网表计算的结果
type Record struct {
	RunID     uuid.UUID `json:"run_id"`
	Created   time.Time `json:"created"`
	Precision int       `json:"precision"` // 输出小数位，小于 0 表示不取整
	Entries   []Entry   `json:"entries"`
}

// NewRecord 创建记录
func NewRecord(precision int) *Record {
	return &Record{
		RunID:     uuid.New(),
		Created:   time.Now(),
		Precision: precision,
	}
}

// Init 按定义顺序记录上下文中的所有值
func (list *Record) Init(con *load.Context) {
	list.Entries = make([]Entry, 0, con.Len())
	for _, name := range con.Names {
		list.Update(name, con.Values[name])
	}
}

// Update 记录数据
func (list *Record) Update(name string, v any) {
	entry := Entry{Name: name}
	switch x := v.(type) {
	case phasor.Phasor:
		mod, rad := x.Polar()
		re, im := x.Rect()
		entry.Kind = KindPhasor
		entry.Phasor = &PhasorEntry{
			Mod: list.round(mod),
			Deg: list.round(maths.Degrees(rad)),
			Rad: list.round(rad),
			Re:  list.round(re),
			Im:  list.round(im),
		}
		entry.Text = x.String()
	case *wattmeter.Wattmeter:
		r := x.Value()
		entry.Kind = KindWattmeter
		entry.Reading = &wattmeter.Reading{
			V:     list.round(r.V),
			I:     list.round(r.I),
			Alpha: list.round(r.Alpha),
			W:     list.round(r.W),
		}
		entry.Text = x.String()
	case float64:
		f := list.round(x)
		entry.Kind = KindValue
		entry.Value = &f
		entry.Text = maths.Format(x, list.Precision)
	case load.PowerFactor:
		f := list.round(x.Value)
		entry.Kind = KindPowerFactor
		entry.Value = &f
		entry.Text = x.String()
	default:
		log.Printf("忽略未知类型 %s: %T", name, v)
		return
	}
	list.Entries = append(list.Entries, entry)
}

func (list *Record) round(x float64) float64 {
	if list.Precision < 0 {
		return x
	}
	return maths.Round(x, list.Precision)
}

// Phasors 记录中的所有相量
func (list *Record) Phasors() []Entry {
	var result []Entry
	for _, e := range list.Entries {
		if e.Phasor != nil {
			result = append(result, e)
		}
	}
	return result
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

func (list *Record) Error(err error) { log.Println(err) }
