package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Записи входа
	RecInfo       Code = 1000
	RecMalformed  Code = 1001
	RecUnsolvable Code = 1002
	RecInvalid    Code = 1003

	// ввод-вывод
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:     "Unknown error",
	RecInfo:         "Record information",
	RecMalformed:    "Malformed record",
	RecUnsolvable:   "Input has no solution",
	RecInvalid:      "Invalid record",
	IOLoadFileError: "Could not read input",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("REC%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
