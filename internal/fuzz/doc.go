
// Package fuzztests houses Go fuzz harnesses for the input pipeline
// (bytes -> FileSet -> lines -> record parsers -> day solvers). The goal is to
// guard against panics and to keep Check and Solve agreeing on arbitrary
// inputs.
//
// Назначение: гонять произвольные байты через source и все зарегистрированные
// дни.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/record, internal/days.

package fuzztests
