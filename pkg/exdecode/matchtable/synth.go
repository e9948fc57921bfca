package matchtable

import (
	"fmt"

	"github.com/ukaji3/exdecode-go/pkg/exdecode/models"
)

// synthesizeConditions registers one "<segment>_is_<bits>" signal per
// distinct constant of every segment and records which rows require it.
func (c *compiler) synthesizeConditions() error {
	for _, col := range c.t.Constants.Columns() {
		h := c.t.Header[col]
		seg, ok := c.m.Signal(h.Segment)
		if !ok {
			return c.cellErr(c.t.Begin+1, col, "", fmt.Errorf("%w: %s", models.ErrUnknownSignal, h.Segment))
		}

		for _, v := range c.t.Constants.Values(col) {
			name := fmt.Sprintf("%s_is_%s", h.Segment, models.FormatBinary(&v, h.Width))
			expr := seg.Unit().Equal(models.Unit(models.Constant(&v, h.Width)))
			cond := models.NewSignal(models.Key(name), 1, models.FromLogic(expr))
			if err := c.register(cond); err != nil {
				return c.cellErr(c.t.Begin+1, col, "", err)
			}

			rows := c.t.Constants.Rows(col, &v)
			for _, r := range rows {
				c.t.Conditions[r] = append(c.t.Conditions[r], cond.Key)
			}
			c.log.Debug("condition", "name", cond.Key, "rows", rows)
		}
	}
	return nil
}

// enable folds the conditions of row with And, right to left. A row
// without conditions is always enabled.
func (c *compiler) enable(row int) models.LogicTree {
	conds := c.t.Conditions[row]
	if len(conds) == 0 {
		return models.Unit(models.ConstantUint64(1, 1))
	}
	unit := func(k models.SignalKey) models.LogicTree {
		s, _ := c.m.Signal(k)
		return s.Unit()
	}
	expr := unit(conds[len(conds)-1])
	for i := len(conds) - 2; i >= 0; i-- {
		expr = expr.And(unit(conds[i]))
	}
	return expr
}

// synthesizePrimaries builds every row's enable and drives each primary
// output from the Or of the enables of the rows naming it.
func (c *compiler) synthesizePrimaries() error {
	var order []models.SignalKey
	drivers := make(map[models.SignalKey]models.LogicTree)

	for _, p := range c.t.Primaries {
		expr := c.enable(p.Row)
		out := models.Key(p.Name)
		c.t.Enables = append(c.t.Enables, Enable{Row: p.Row, Output: out, Expr: expr})
		c.log.Debug("enable", "row", p.Row, "output", out, "expr", expr)

		if prev, ok := drivers[out]; ok {
			drivers[out] = prev.Or(expr)
			continue
		}
		drivers[out] = expr
		order = append(order, out)
	}

	for _, out := range order {
		if err := c.drive(out, drivers[out]); err != nil {
			return c.rowErr(c.t.Begin+1, err)
		}
	}
	return nil
}

func (c *compiler) drive(out models.SignalKey, expr models.LogicTree) error {
	s, ok := c.m.Signal(out)
	if !ok {
		return c.register(models.NewSignal(out, 1, models.FromLogic(expr)))
	}
	if s.Width != 1 {
		return fmt.Errorf("%w: primary output %s is declared %d bits wide", models.ErrDuplicateSignal, out, s.Width)
	}
	if err := c.m.Connect(out, models.FromLogic(expr)); err != nil {
		return fmt.Errorf("%w: %w", models.ErrDuplicateSignal, err)
	}
	c.log.Debug("connected signal", "name", out, "source", s.Source)
	return nil
}
