package textcodec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ffnet-ml/ffnet/internal/network"
)

// lineReader yields lines one at a time. Lines handed back with unread are
// returned again before the underlying stream is consumed further; the header
// probe uses this to hand a misread line back to the block reader.
//
// Lines are read with bufio.Reader, not bufio.Scanner: rows of wide layers
// routinely exceed the scanner's token limit.
type lineReader struct {
	reader  *bufio.Reader
	pending []string
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

// next returns the next line with its line ending stripped, or ErrTruncated
// at end of input.
func (lr *lineReader) next() (string, error) {
	if len(lr.pending) > 0 {
		line := lr.pending[0]
		lr.pending = lr.pending[1:]
		return line, nil
	}
	line, err := lr.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read line: %w", err)
		}
		if line == "" {
			return "", ErrTruncated
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// unread pushes a line back so the next call to next returns it.
func (lr *lineReader) unread(line string) {
	lr.pending = append(lr.pending, line)
}

// Encode writes the full text document for src to w: the name line if name is
// non-empty, the signature line, then one block per layer boundary in
// topology order.
func Encode(w io.Writer, src network.ParameterReader, name string) error {
	t := src.Topology()
	if err := t.Validate(); err != nil {
		return fmt.Errorf("cannot encode network: %w", err)
	}

	if name != "" {
		if _, err := io.WriteString(w, name+"\n"); err != nil {
			return fmt.Errorf("failed to write name: %w", err)
		}
	}
	if _, err := io.WriteString(w, FormatSignature(t)+"\n"); err != nil {
		return fmt.Errorf("failed to write signature: %w", err)
	}

	for _, b := range t.Boundaries() {
		if err := writeBlock(w, b, src); err != nil {
			return err
		}
	}
	return nil
}

// readHeader consumes the name line, if any, and the signature line.
//
// The first line is treated as a name only when the second line parses as a
// signature; otherwise the first line itself must be the signature and the
// second line, if present, is handed back as the first block line. A name
// that happens to parse as a signature is indistinguishable from an absent
// name; callers that need certainty should use the binary format.
func readHeader(lines *lineReader) (string, network.Topology, error) {
	first, err := lines.next()
	if err != nil {
		if errors.Is(err, ErrTruncated) {
			return "", network.Topology{}, formatErr("signature", ErrCannotReadSignature)
		}
		return "", network.Topology{}, err
	}
	second, secondErr := lines.next()
	if secondErr != nil && !errors.Is(secondErr, ErrTruncated) {
		return "", network.Topology{}, secondErr
	}

	if secondErr == nil {
		if t, err := ParseSignature(second); err == nil {
			return first, t, nil
		}
	}

	t, err := ParseSignature(first)
	if err != nil {
		return "", network.Topology{}, formatErr("signature", ErrCannotReadSignature)
	}
	if secondErr == nil {
		lines.unread(second)
	}
	return "", t, nil
}

// Decode reads a full text document from r and returns a freshly constructed
// network with the decoded name (empty if the document has none). The network
// is built and filled internally, so a failed decode never exposes partially
// written parameters.
func Decode(r io.Reader) (*network.Network, string, error) {
	lines := newLineReader(r)

	name, t, err := readHeader(lines)
	if err != nil {
		return nil, "", err
	}

	net, err := network.New(t)
	if err != nil {
		return nil, "", formatErr("signature", err)
	}
	net.SetName(name)

	for _, b := range t.Boundaries() {
		if err := readBlock(lines, b, net); err != nil {
			return nil, "", err
		}
	}
	return net, name, nil
}

// ReadInto decodes the document from r directly into dst, which must already
// be sized to the document's topology. It returns the decoded name, or "" if
// the document has none.
//
// Writes land in dst as they are parsed; on error dst is left partially
// populated. Prefer Decode when the caller does not need in-place filling.
func ReadInto(r io.Reader, dst network.ParameterWriter) (string, error) {
	lines := newLineReader(r)

	name, t, err := readHeader(lines)
	if err != nil {
		return "", err
	}
	if !t.Equal(dst.Topology()) {
		return "", formatErr("signature", fmt.Errorf("document topology %s does not match target %s",
			FormatSignature(t), FormatSignature(dst.Topology())))
	}

	for _, b := range t.Boundaries() {
		if err := readBlock(lines, b, dst); err != nil {
			return "", err
		}
	}
	return name, nil
}

// EncodeString returns the text document for src as a string.
func EncodeString(src network.ParameterReader, name string) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, src, name); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// DecodeString decodes a text document held in a string.
func DecodeString(doc string) (*network.Network, string, error) {
	return Decode(strings.NewReader(doc))
}

// EncodeFile writes the text document for src to the file at path, creating
// or truncating it. The file is closed on every return path.
func EncodeFile(path string, src network.ParameterReader, name string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, src, name); err != nil {
		return err
	}
	return bw.Flush()
}

// DecodeFile reads the text document at path. The file is closed on every
// return path.
func DecodeFile(path string) (*network.Network, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
