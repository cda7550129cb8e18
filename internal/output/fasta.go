package output

import (
	"io"

	"pairwalk/internal/fasta"
	"pairwalk/internal/resolve"
)

// WriteRecord writes one single-line FASTA record: ">id\nseq\n".
func WriteRecord(w io.Writer, r fasta.Record) error {
	buf := make([]byte, 0, len(r.ID)+len(r.Seq)+3)
	buf = append(buf, '>')
	buf = append(buf, r.ID...)
	buf = append(buf, '\n')
	buf = append(buf, r.Seq...)
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}

// WriteFASTA writes a slice of records to the writer.
func WriteFASTA(w io.Writer, list []fasta.Record) error {
	for _, r := range list {
		if err := WriteRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}

// StreamFASTA streams the records of each result from a channel to the
// writer. Skipped pairs carry no records and produce no output.
func StreamFASTA(w io.Writer, in <-chan resolve.Result) error {
	for res := range in {
		if err := WriteFASTA(w, res.Records); err != nil {
			return err
		}
	}
	return nil
}
