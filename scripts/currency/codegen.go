package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type currency struct {
	Code      string
	Num       int
	Precision int
	Symbol    string
	Name      string
}

func main() {
	currs, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	code, err := generateGoCode(currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([]currency, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	currs := make([]currency, 0, len(recs))
	for _, rec := range recs {
		num, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("record %v: %v", rec, err)
		}
		precision, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("record %v: %v", rec, err)
		}
		currs = append(currs, currency{
			Code:      rec[0],
			Num:       num,
			Precision: precision,
			Symbol:    rec[3],
			Name:      rec[4],
		})
	}
	return currs, nil
}

func generateGoCode(currs []currency) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("// Code generated by scripts/currency/codegen.go; DO NOT EDIT.\n\n")
	sb.WriteString("package money\n\n")
	sb.WriteString("// iso4217 is the seed table for the default registry.\n")
	sb.WriteString("var iso4217 = []Currency{\n")
	for _, c := range currs {
		fmt.Fprintf(&sb, "\t{Code: %q, Num: %d, Precision: %d, Symbol: %q, Name: %q},\n",
			c.Code, c.Num, c.Precision, c.Symbol, c.Name)
	}
	sb.WriteString("}\n")
	return format.Source([]byte(sb.String()))
}

func writeToFile(filename string, code []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	writer := bufio.NewWriter(out)
	_, err = writer.Write(bytes.TrimSpace(code))
	if err != nil {
		return err
	}
	_, err = writer.WriteString("\n")
	if err != nil {
		return err
	}
	return writer.Flush()
}
