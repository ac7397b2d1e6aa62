package sheet

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

const valueInput = "USER_ENTERED"

func (s *implSheet) ReadAllRows(ctx context.Context) ([][]string, error) {
	tab, err := s.resolveTab(ctx)
	if err != nil {
		return nil, err
	}

	vr, err := s.svc.Spreadsheets.Values.Get(s.id, quoteTab(tab)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", tab, err)
	}

	rows := make([][]string, len(vr.Values))
	for i, raw := range vr.Values {
		row := make([]string, len(raw))
		for j, v := range raw {
			row[j] = fmt.Sprint(v)
		}
		rows[i] = row
	}

	s.logger.Debug(ctx, "Read %d rows from %s", len(rows), tab)
	return rows, nil
}

func (s *implSheet) WriteCell(ctx context.Context, rowNumber, column int, value string) error {
	tab, err := s.resolveTab(ctx)
	if err != nil {
		return err
	}

	ref := A1(tab, rowNumber, column)
	_, err = s.svc.Spreadsheets.Values.Update(s.id, ref, &sheets.ValueRange{
		Values: [][]interface{}{{value}},
	}).ValueInputOption(valueInput).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write %s: %w", ref, err)
	}
	return nil
}

func (s *implSheet) WriteCells(ctx context.Context, rowNumber int, cells []Cell) error {
	if len(cells) == 0 {
		return nil
	}
	tab, err := s.resolveTab(ctx)
	if err != nil {
		return err
	}

	data := make([]*sheets.ValueRange, 0, len(cells))
	for _, c := range cells {
		data = append(data, &sheets.ValueRange{
			Range:  A1(tab, rowNumber, c.Column),
			Values: [][]interface{}{{c.Value}},
		})
	}

	_, err = s.svc.Spreadsheets.Values.BatchUpdate(s.id, &sheets.BatchUpdateValuesRequest{
		ValueInputOption: valueInput,
		Data:             data,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("batch write row %d: %w", rowNumber, err)
	}
	return nil
}

func (s *implSheet) resolveTab(ctx context.Context) (string, error) {
	if s.tab != "" {
		return s.tab, nil
	}

	ss, err := s.svc.Spreadsheets.Get(s.id).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("get spreadsheet %s: %w", s.id, err)
	}
	if len(ss.Sheets) == 0 || ss.Sheets[0].Properties == nil {
		return "", fmt.Errorf("spreadsheet %s has no tabs", s.id)
	}

	s.tab = ss.Sheets[0].Properties.Title
	return s.tab, nil
}
