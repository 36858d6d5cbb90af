package main

import (
	"errors"
	"fmt"
	"io"
	"ninety_nine/linked_list"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const delim = "&-=-&"

var errEmptyList = errors.New("list must have at least one element")

type fixture struct {
	values []int
	index  int
}

var fixtures = []fixture{
	{values: []int{1, 1, 2, 3, 5, 8, 13}, index: 4},
	{values: []int{1, 2, 1}, index: 3},
	{values: []int{1}, index: 0},
}

// report holds the answers to P01-P06 for one list. Absent answers are nil.
type report struct {
	List        []int `yaml:"list"`
	Last        *int  `yaml:"last"`
	Penultimate *int  `yaml:"penultimate"`
	Index       int   `yaml:"index"`
	At          *int  `yaml:"at"`
	Length      int   `yaml:"length"`
	Reverse     []int `yaml:"reverse"`
	Palindrome  bool  `yaml:"palindrome"`
}

func optional(v int, ok bool) *int {
	if !ok {
		return nil
	}
	return &v
}

func evaluate(cases []fixture) ([]report, error) {
	reports := make([]report, 0, len(cases))
	for _, c := range cases {
		l := linked_list.New(c.values)
		if l == nil {
			return nil, errEmptyList
		}
		r := report{
			List:       l.Values(),
			Index:      c.index,
			Length:     l.Length(),
			Reverse:    l.Reverse().Values(),
			Palindrome: linked_list.IsPalindrome(l),
		}
		r.Last = optional(l.Last())
		r.Penultimate = optional(l.Penultimate())
		r.At = optional(l.At(c.index))
		logger.Debug("evaluated list", zap.Stringer("list", l), zap.Int("index", c.index))
		reports = append(reports, r)
	}
	return reports, nil
}

func render(w io.Writer, format string, reports []report) error {
	switch format {
	case "text":
		for _, r := range reports {
			if err := writeText(w, r); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, r := range reports {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encoding report: %w", err)
			}
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", format)
	}
}

func show(v *int) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprint(*v)
}

func writeText(w io.Writer, r report) error {
	_, err := fmt.Fprintf(w, "%s %s\n"+
		"P01 last=%s\n"+
		"P02 penultimate=%s\n"+
		"P03 at(%d)=%s\n"+
		"P04 length=%d\n"+
		"P05 reverse=%s\n"+
		"P06 palindrome=%t\n",
		delim, linked_list.New(r.List),
		show(r.Last),
		show(r.Penultimate),
		r.Index, show(r.At),
		r.Length,
		linked_list.New(r.Reverse),
		r.Palindrome)
	return err
}
