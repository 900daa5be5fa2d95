package types

import "strconv"

// NewPosition конструктор позиции клетки поля.
func NewPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

// Position клетка игрового поля, занятая сегментом тела змейки.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	var buf []byte
	buf = append(buf, "{row:"...)
	buf = strconv.AppendInt(buf, int64(p.Row), 10)
	buf = append(buf, ",col:"...)
	buf = strconv.AppendInt(buf, int64(p.Col), 10)
	buf = append(buf, '}')
	return string(buf)
}
