package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statusXML = `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.002.001.10">
  <FIToFIPmtStsRpt>
    <GrpHdr><MsgId>STS-0001</MsgId><CreDtTm>2024-05-01T10:11:13Z</CreDtTm></GrpHdr>
    <TxInfAndSts><OrgnlEndToEndId>E2E-0001</OrgnlEndToEndId><TxSts>ACSC</TxSts></TxInfAndSts>
  </FIToFIPmtStsRpt>
</Document>`

func runCmd(t *testing.T, sub string, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), sub, args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidate_OKAndFail(t *testing.T) {
	good := writeFile(t, "good.xml", statusXML)
	bad := writeFile(t, "bad.xml", strings.Replace(statusXML, "ACSC", "REJECTED", 1))

	out, _, err := runCmd(t, "validate", "", good, bad)
	assert.True(t, errors.Is(err, errFailed))
	assert.Contains(t, out, good+": OK pacs.002.001.10")
	assert.Contains(t, out, bad+": FAIL 1002 /TxInfAndSts/0/TxSts TxSts exceeds the maximum length of 4")
}

func TestValidate_Japanese(t *testing.T) {
	bad := writeFile(t, "bad.xml", strings.Replace(statusXML, "STS-0001", "", 1))
	out, _, err := runCmd(t, "validate", "", "-lang", "ja", bad)
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "MsgId は最小長 1 より短いです")
}

func TestValidate_UnsupportedLanguage(t *testing.T) {
	good := writeFile(t, "good.xml", statusXML)
	out, _, err := runCmd(t, "validate", "", "-lang", "fr", good)
	require.Error(t, err)
	assert.False(t, errors.Is(err, errFailed))
	assert.Contains(t, err.Error(), "language")
	assert.Empty(t, out)
}

func TestValidate_StdinAndMetrics(t *testing.T) {
	cfg := writeFile(t, "iso20022.yaml", "metrics:\n  enabled: true\nlogging:\n  level: error\n")
	out, errOut, err := runCmd(t, "validate", statusXML, "-config", cfg, "-")
	require.NoError(t, err)
	assert.Contains(t, out, "-: OK pacs.002.001.10")
	assert.Contains(t, errOut, `iso20022_batch_documents_total{kind="pacs.002.001.10",outcome="valid"} 1`)
}

func TestValidate_NoArgs(t *testing.T) {
	_, _, err := runCmd(t, "validate", "")
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestValidate_FamilySubset(t *testing.T) {
	good := writeFile(t, "good.xml", statusXML)
	out, _, err := runCmd(t, "validate", "", "-families", "camt", good)
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "FAIL 9999 / Unknown document type")
}

func TestConvert_XMLToJSON(t *testing.T) {
	out, _, err := runCmd(t, "convert", statusXML, "-to", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"xmlns":"urn:iso:std:iso:20022:tech:xsd:pacs.002.001.10"`)
	assert.Contains(t, out, `"TxSts":"ACSC"`)

	back, _, err := runCmd(t, "convert", out, "-to", "xml")
	require.NoError(t, err)
	assert.Contains(t, back, "<TxSts>ACSC</TxSts>")
}

func TestConvert_ToFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.json")
	_, _, err := runCmd(t, "convert", statusXML, "-to", "json", "-o", dst)
	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"FIToFIPmtStsRpt"`)
}

func TestConvert_BadTarget(t *testing.T) {
	_, _, err := runCmd(t, "convert", statusXML, "-to", "yaml")
	assert.Error(t, err)
}

func TestSample_ValidatesRoundTrip(t *testing.T) {
	out, _, err := runCmd(t, "sample", "", "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08">`)

	path := writeFile(t, "ct.xml", out)
	res, _, err := runCmd(t, "validate", "", path)
	require.NoError(t, err)
	assert.Contains(t, res, "OK pacs.008.001.08")
}

func TestSample_StatusJSON(t *testing.T) {
	out, _, err := runCmd(t, "sample", "", "-status", "RJCT", "-reason", "AC04", "-format", "json")
	require.NoError(t, err)
	compact := strings.Join(strings.Fields(out), "")
	assert.Contains(t, compact, `"TxSts":"RJCT"`)
	assert.Contains(t, compact, `"Cd":"AC04"`)
}

func TestSample_Envelope(t *testing.T) {
	out, _, err := runCmd(t, "sample", "", "-envelope")
	require.NoError(t, err)
	assert.Contains(t, out, "<FedNowCustomerCreditTransfer>")

	_, _, err = runCmd(t, "sample", "", "-envelope", "-format", "json")
	assert.Error(t, err)
}

func TestKinds(t *testing.T) {
	out, _, err := runCmd(t, "kinds", "")
	require.NoError(t, err)
	for _, want := range []string{"pacs.008.001.08", "head.001.001.02", "camt.060.001.05", "admi.002.001.01"} {
		assert.Contains(t, out, want)
	}

	_, _, err = runCmd(t, "kinds", "", "-families", "nope")
	assert.Error(t, err)
}

func TestUnknownSubcommand(t *testing.T) {
	_, errOut, err := runCmd(t, "frobnicate", "")
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, errOut, "Usage:")
}
