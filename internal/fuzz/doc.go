// Package fuzztests houses Go fuzz harnesses for the quill front end
// (source -> line table, source -> lexer). They guard against panics,
// non-terminating scans and lossy token streams on arbitrary input.
//
// Назначение: загрузить байты в FileSet и прогнать их через лексер и
// индекс строк, проверяя инварианты из internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
