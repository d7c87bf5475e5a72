package core

import (
	"sort"
	"strings"
)

type PickerItem struct {
	ID     string
	Label  string
	Search string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker is a type-to-filter single-select list.
type Picker struct {
	title    string
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
}

func NewPicker(title string, items []PickerItem) *Picker {
	p := &Picker{title: strings.TrimSpace(title)}
	p.SetItems(items)
	return p
}

func (p *Picker) Title() string { return p.title }
func (p *Picker) Query() string { return p.query }
func (p *Picker) Cursor() int   { return p.cursor }

func (p *Picker) Items() []PickerItem {
	return append([]PickerItem(nil), p.filtered...)
}

func (p *Picker) SetItems(items []PickerItem) {
	p.items = append([]PickerItem(nil), items...)
	p.rebuildFiltered()
}

func (p *Picker) SetQuery(q string) {
	p.query = q
	p.rebuildFiltered()
}

// SetCursorTo moves the cursor onto the item with id, if visible.
func (p *Picker) SetCursorTo(id string) {
	for i, it := range p.filtered {
		if it.ID == id {
			p.cursor = i
			return
		}
	}
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	idx := min(max(p.cursor, 0), len(p.filtered)-1)
	return p.filtered[idx], true
}

func (p *Picker) HandleKey(keyName string) PickerResult {
	switch keyName {
	case "up", "shift+tab":
		if p.cursor > 0 {
			p.cursor--
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "down", "tab":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "enter":
		item, ok := p.CurrentItem()
		if !ok {
			return PickerResult{Action: PickerActionNone}
		}
		return PickerResult{Action: PickerActionSelected, Item: item}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if q := []rune(p.query); len(q) > 0 {
			p.SetQuery(string(q[:len(q)-1]))
		}
		return PickerResult{Action: PickerActionNone}
	default:
		if isPrintableKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
		return PickerResult{Action: PickerActionNone}
	}
}

type scoredPickerItem struct {
	item  PickerItem
	score int
	index int
}

func (p *Picker) rebuildFiltered() {
	q := strings.TrimSpace(p.query)
	scored := make([]scoredPickerItem, 0, len(p.items))
	for idx, item := range p.items {
		search := strings.TrimSpace(item.Search)
		if search == "" {
			search = item.Label
		}
		matched, score := fuzzyMatchScore(search, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredPickerItem{item: item, score: score, index: idx})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})
	p.filtered = make([]PickerItem, 0, len(scored))
	for _, row := range scored {
		p.filtered = append(p.filtered, row.item)
	}
	p.cursor = min(max(p.cursor, 0), max(len(p.filtered)-1, 0))
}

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelRunes := []rune(strings.ToLower(label))
	queryRunes := []rune(strings.ToLower(query))

	matchIdx := make([]int, 0, len(queryRunes))
	searchFrom := 0
	for _, ch := range queryRunes {
		found := false
		for j := searchFrom; j < len(labelRunes); j++ {
			if labelRunes[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryRunes)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isPrintableKey(keyName string) bool {
	r := []rune(keyName)
	return len(r) == 1 && r[0] >= 32 && r[0] != 127
}
