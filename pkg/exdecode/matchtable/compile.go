package matchtable

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ukaji3/exdecode-go/pkg/exdecode/dsl"
	"github.com/ukaji3/exdecode-go/pkg/exdecode/grid"
	"github.com/ukaji3/exdecode-go/pkg/exdecode/models"
)

// targetCol is the column of the #match row holding the target reference.
const targetCol = 1

type compiler struct {
	m      *models.Module
	sheet  *grid.Sheet
	log    *slog.Logger
	t      *Table
	target *models.Signal
	match  *models.Signal
}

// Compile compiles the block spanning rows [begin, end) of sheet, where
// begin is the #match row and end the #end row, registering the signals it
// derives in m. A nil logger discards output.
//
// Compilation stops at the first error. Signals registered before the
// error stay in m.
func Compile(m *models.Module, sheet *grid.Sheet, begin, end int, logger *slog.Logger) (*Table, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &compiler{
		m:     m,
		sheet: sheet,
		log:   logger.With("sheet", sheet.Name, "table", begin+1),
		t:     newTable(sheet.Name, begin, end),
	}
	if end-begin < 2 {
		return nil, c.rowErr(begin, ErrIncompleteTable)
	}

	if err := c.resolveTarget(begin); err != nil {
		return nil, err
	}
	if err := c.classifyHeader(begin + 1); err != nil {
		return nil, err
	}
	for r := begin + 2; r < end; r++ {
		if err := c.scanRow(r); err != nil {
			return nil, err
		}
	}
	if err := c.synthesizeConditions(); err != nil {
		return nil, err
	}
	if err := c.synthesizePrimaries(); err != nil {
		return nil, err
	}
	return c.t, nil
}

func (c *compiler) cellErr(row, col int, content string, err error) error {
	return &CellError{Sheet: c.sheet.Name, Row: row, Col: col, Content: content, Err: err}
}

func (c *compiler) rowErr(row int, err error) error {
	return &CellError{Sheet: c.sheet.Name, Row: row, Col: -1, Err: err}
}

// parseAll runs parse over the whole of text.
func parseAll[T any](parse func(string) (T, string, error), text string) (T, error) {
	v, rest, err := parse(text)
	if err != nil {
		return v, err
	}
	if rest = strings.TrimSpace(rest); rest != "" {
		var zero T
		return zero, fmt.Errorf("%w %q", ErrTrailingInput, rest)
	}
	return v, nil
}

func (c *compiler) register(s *models.Signal) error {
	if err := c.m.AddSignal(s); err != nil {
		return err
	}
	c.log.Debug("registered signal", "name", s.Key, "width", s.Width, "source", s.Source)
	return nil
}

func toIndexRanges(sels []dsl.Range) []models.IndexRange {
	out := make([]models.IndexRange, len(sels))
	for i, s := range sels {
		out[i] = models.Bits(int(s.High), int(s.Low))
	}
	return out
}

func (c *compiler) resolveTarget(row int) error {
	content, ok := c.sheet.Content(row, targetCol)
	if !ok {
		return c.cellErr(row, targetCol, "", ErrMissingTarget)
	}
	text := strings.TrimSpace(content.Text)
	ref, err := parseAll(dsl.SignalRef, text)
	if err != nil {
		return c.cellErr(row, targetCol, text, err)
	}
	target, err := c.m.Lookup(ref.Name)
	if err != nil {
		return c.cellErr(row, targetCol, text, err)
	}

	wire := target.Whole()
	if ref.Selections != nil {
		if wire, err = target.Multiple(toIndexRanges(ref.Selections)); err != nil {
			return c.cellErr(row, targetCol, text, err)
		}
	}

	match := models.NewSignal(models.Key("match_"+wire.Name()), wire.Len(), models.FromWire(wire))
	if err := c.register(match); err != nil {
		return c.cellErr(row, targetCol, text, err)
	}
	c.target, c.match = target, match
	c.t.Target, c.t.Match = target.Key, match.Key
	return nil
}

func (c *compiler) classifyHeader(row int) error {
	c.t.Header = make([]Column, c.sheet.RowLen(row))
	primary := -1

	cur := c.sheet.Row(row)
	for col, ok := cur.Next(); ok; col, ok = cur.Next() {
		content, ok := c.sheet.Content(row, col)
		if !ok {
			continue
		}
		text := strings.TrimSpace(content.Text)
		if text == "" {
			continue
		}
		if content.Cols() > 1 {
			return c.cellErr(row, col, text, ErrMergedHeader)
		}

		if strings.HasPrefix(text, "#") {
			d, err := parseAll(dsl.MatchCmd, text)
			if err != nil {
				return c.cellErr(row, col, text, err)
			}
			switch d.Kind {
			case dsl.DirectivePrimary:
				if primary >= 0 {
					return c.cellErr(row, col, text, ErrDuplicatePrimary)
				}
				primary = col
				c.t.Header[col] = Column{Kind: ColumnPrimary, Prefix: d.Prefix}
			case dsl.DirectiveFlag:
				c.t.Header[col] = Column{Kind: ColumnFlag, Prefix: d.Prefix}
				c.t.Flags = append(c.t.Flags, &FlagColumn{Col: col, Prefix: d.Prefix, Rows: make(map[string][]int)})
			}
			continue
		}

		alias, err := parseAll(dsl.RangeAlias, text)
		if err != nil {
			return c.cellErr(row, col, text, err)
		}
		h, l := int(alias.Range.High), int(alias.Range.Low)
		wire, err := c.match.Range(models.Bits(h, l))
		if err != nil {
			return c.cellErr(row, col, text, err)
		}
		name := alias.Name
		if name == "" {
			name = fmt.Sprintf("%s_%dto%d", c.target.Key, h, l)
		}
		seg := models.NewSignal(models.Key(name), wire.Len(), models.FromWire(wire))
		if err := c.register(seg); err != nil {
			return c.cellErr(row, col, text, err)
		}
		c.t.Header[col] = Column{Kind: ColumnSegment, Segment: seg.Key, Width: seg.Width}
	}

	if primary < 0 {
		return c.rowErr(row, ErrMissingPrimary)
	}
	return nil
}

func (c *compiler) column(row, col int, text string) (Column, error) {
	if col < 0 || col >= len(c.t.Header) {
		return Column{}, c.cellErr(row, col, text,
			fmt.Errorf("%w: column outside the %d header columns", ErrUnclassifiedColumn, len(c.t.Header)))
	}
	return c.t.Header[col], nil
}

func (c *compiler) segment(row, col int, text string) (Column, error) {
	h, err := c.column(row, col, text)
	if err != nil {
		return Column{}, err
	}
	if h.Kind != ColumnSegment {
		return Column{}, c.cellErr(row, col, text,
			fmt.Errorf("%w: expected a segment column, found %s", ErrUnclassifiedColumn, h.Kind))
	}
	return h, nil
}

func (c *compiler) scanRow(row int) error {
	idx := row - c.t.Begin
	cur := c.sheet.Row(row)
	for col, ok := cur.Next(); ok; col, ok = cur.Next() {
		content, ok := c.sheet.Content(row, col)
		if !ok {
			continue
		}
		text := strings.TrimSpace(content.Text)
		if text == "" {
			continue
		}
		value, err := parseAll(dsl.MatchContent, text)
		if err != nil {
			return c.cellErr(row, col, text, err)
		}
		if _, err := c.column(row, col, text); err != nil {
			return err
		}

		switch value.Kind {
		case dsl.ContentConstant:
			err = c.scanConstant(row, col, text, content, value.Constant)
		case dsl.ContentSignal:
			err = c.scanReference(row, col, text, content, value.Ref, cur)
		}
		if err != nil {
			return err
		}
	}
	c.log.Debug("scanned row", "row", idx)
	return nil
}

// scanConstant records the constant bound to the segment at col. A literal
// merged over several segments binds its most significant bits to the
// leftmost segment.
func (c *compiler) scanConstant(row, col int, text string, content grid.CellContent, k dsl.SizedConstant) error {
	declared := int(k.Width)
	h, err := c.segment(row, col, text)
	if err != nil {
		return err
	}

	value := k.Value
	if content.Cols() > 1 {
		covered := 0
		for i := col - content.ColOffset(); i <= col; i++ {
			seg, err := c.segment(row, i, text)
			if err != nil {
				return err
			}
			covered += seg.Width
		}
		if covered > declared || (content.Merged.LastCol() && covered != declared) {
			return c.cellErr(row, col, text, fmt.Errorf("%w: literal is %d bits, merged segments through this column are %d bits",
				ErrWidthMismatch, declared, covered))
		}
		value.Rsh(&value, uint(declared-covered))
		value = *models.Mask(&value, h.Width)
	} else if h.Width != declared {
		return c.cellErr(row, col, text, fmt.Errorf("%w: literal is %d bits, segment %s is %d bits",
			ErrWidthMismatch, declared, h.Segment, h.Width))
	}

	c.t.Constants.Insert(row-c.t.Begin, col, &value)
	return nil
}

func (c *compiler) scanReference(row, col int, text string, content grid.CellContent, ref dsl.Reference, cur *grid.RowCursor) error {
	idx := row - c.t.Begin
	h := c.t.Header[col]

	switch h.Kind {
	case ColumnSegment:
		sig, err := c.m.Lookup(ref.Name)
		if err != nil {
			return c.cellErr(row, col, text, err)
		}
		ranges := []models.IndexRange{models.Bits(sig.Width-1, 0)}
		if ref.Selections != nil {
			ranges = toIndexRanges(ref.Selections)
		}
		wire, err := sig.Multiple(ranges)
		if err != nil {
			return c.cellErr(row, col, text, err)
		}

		first := col - content.ColOffset()
		span := ColumnSpan{Begin: first, End: first + content.Cols()}
		covered := 0
		for i := span.Begin; i < span.End; i++ {
			seg, err := c.segment(row, i, text)
			if err != nil {
				return err
			}
			covered += seg.Width
		}
		if covered != wire.Len() {
			return c.cellErr(row, col, text, fmt.Errorf("%w: reference selects %d bits, segments %s are %d bits",
				ErrWidthMismatch, wire.Len(), span, covered))
		}
		cur.Skip(span.End - col - 1)
		c.t.Routes.Insert(sig.Key, idx, ranges, span)

	case ColumnPrimary:
		c.t.Primaries = append(c.t.Primaries, PrimaryRow{Row: idx, Name: h.Prefix + "_" + ref.Name})

	case ColumnFlag:
		f := c.t.flag(col)
		name := h.Prefix + "_" + ref.Name
		f.Rows[name] = append(f.Rows[name], idx)

	default:
		return c.cellErr(row, col, text, fmt.Errorf("%w: reference %s under %s column", ErrUnclassifiedColumn, ref.Name, h.Kind))
	}
	return nil
}
