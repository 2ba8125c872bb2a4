// Package sample builds well-formed FedNow style messages for tests, demos and
// load generation.
package sample

import (
	"crypto/rand"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	iso "github.com/open-payments/iso20022"
	"github.com/open-payments/iso20022/bizmsg"
	dt "github.com/open-payments/iso20022/datatype"
	"github.com/open-payments/iso20022/head"
	"github.com/open-payments/iso20022/pacs"
)

// Options controls generated credit transfers. Zero values take the defaults
// noted on each field.
type Options struct {
	Transactions  int // 1
	Currency      string // USD
	Amount        float64 // 100, per transaction
	DebtorAgent   string // 011000015
	CreditorAgent string // 021000021
	// Now stamps creation times. Defaults to time.Now.
	Now func() time.Time
	// Rand feeds identifier generation. Defaults to crypto/rand.
	Rand io.Reader
}

func (o *Options) setDefaults() {
	if o.Transactions <= 0 {
		o.Transactions = 1
	}
	if o.Currency == "" {
		o.Currency = "USD"
	}
	if o.Amount == 0 {
		o.Amount = 100
	}
	if o.DebtorAgent == "" {
		o.DebtorAgent = "011000015"
	}
	if o.CreditorAgent == "" {
		o.CreditorAgent = "021000021"
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Rand == nil {
		o.Rand = rand.Reader
	}
}

// Generator produces messages with fresh identifiers.
type Generator struct {
	opts Options
}

// New returns a Generator for opts.
func New(opts Options) *Generator {
	opts.setDefaults()
	return &Generator{opts: opts}
}

// CreditTransfer builds a pacs.008.001.08 with opts.Transactions transactions,
// each with its own end-to-end id and UETR.
func (g *Generator) CreditTransfer() (*pacs.FIToFICustomerCreditTransferV08, error) {
	now := g.opts.Now().UTC()
	msgID, err := g.messageID(now, g.opts.DebtorAgent)
	if err != nil {
		return nil, err
	}
	sttlmDt := dt.DateOf(now)
	ccy := dt.ActiveCurrencyCode(g.opts.Currency)
	total := dt.ActiveCurrencyAndAmount{Ccy: ccy, Value: g.opts.Amount * float64(g.opts.Transactions)}
	clrSys := dt.CashClearingSystemCode("FDN")
	lcl := dt.Proprietary("FDNA")
	svcLvl := dt.Code("SDVA")

	m := &pacs.FIToFICustomerCreditTransferV08{
		GrpHdr: pacs.GroupHeader93{
			MsgId:             dt.Max35Text(msgID),
			CreDtTm:           dt.DateTimeOf(now),
			NbOfTxs:           dt.Max15NumericText(strconv.Itoa(g.opts.Transactions)),
			TtlIntrBkSttlmAmt: &total,
			IntrBkSttlmDt:     &sttlmDt,
			SttlmInf: pacs.SettlementInstruction7{
				SttlmMtd: dt.SettlementClearing,
				ClrSys:   &dt.ClearingSystemIdentification3Choice{Value: &clrSys},
			},
			PmtTpInf: &pacs.PaymentTypeInformation28{
				SvcLvl:    []dt.CodeChoice{{Value: &svcLvl}},
				LclInstrm: &dt.LocalInstrument2Choice{Value: &lcl},
			},
		},
	}
	for i := 0; i < g.opts.Transactions; i++ {
		tx, err := g.transaction(msgID, i, ccy)
		if err != nil {
			return nil, err
		}
		m.CdtTrfTxInf = append(m.CdtTrfTxInf, tx)
	}
	return m, nil
}

func (g *Generator) transaction(msgID string, i int, ccy dt.ActiveCurrencyCode) (pacs.CreditTransferTransaction39, error) {
	uetr, err := uuid.NewRandomFromReader(g.opts.Rand)
	if err != nil {
		return pacs.CreditTransferTransaction39{}, fmt.Errorf("sample: uetr: %w", err)
	}
	e2e := fmt.Sprintf("E2E-%s-%d", strings.ToUpper(uetr.String()[:8]), i+1)
	txID := dt.Max35Text(fmt.Sprintf("%.30s%05d", msgID, i+1))
	uetrID := dt.UUIDv4Identifier(uetr.String())
	acct := dt.AccountOther{GenericAccountIdentification1: dt.GenericAccountIdentification1{
		Id: dt.Max34Text(fmt.Sprintf("%010d", 1000000000+i)),
	}}
	return pacs.CreditTransferTransaction39{
		PmtId: pacs.PaymentIdentification7{
			EndToEndId: dt.Max35Text(e2e),
			TxId:       &txID,
			UETR:       &uetrID,
		},
		IntrBkSttlmAmt: dt.ActiveCurrencyAndAmount{Ccy: ccy, Value: g.opts.Amount},
		ChrgBr:         dt.ChargeBearerServiceLevel,
		Dbtr:           party("Debtor " + strconv.Itoa(i+1)),
		DbtrAcct:       &dt.CashAccount38{Id: dt.AccountIdentification4Choice{Value: &acct}},
		DbtrAgt:        agent(g.opts.DebtorAgent),
		CdtrAgt:        agent(g.opts.CreditorAgent),
		Cdtr:           party("Creditor " + strconv.Itoa(i+1)),
		RmtInf:         &pacs.RemittanceInformation16{Ustrd: []dt.Max140Text{dt.Max140Text("Sample payment " + e2e)}},
	}, nil
}

// StatusReport answers ct with a pacs.002.001.10 giving every transaction the
// status sts. reason, when not empty, is attached as a status reason code.
func (g *Generator) StatusReport(ct *pacs.FIToFICustomerCreditTransferV08, sts pacs.ExternalPaymentTransactionStatus1Code, reason string) (*pacs.FIToFIPaymentStatusReportV10, error) {
	now := g.opts.Now().UTC()
	msgID, err := g.messageID(now, g.opts.CreditorAgent)
	if err != nil {
		return nil, err
	}
	rpt := &pacs.FIToFIPaymentStatusReportV10{
		GrpHdr: pacs.GroupHeader91{MsgId: dt.Max35Text(msgID), CreDtTm: dt.DateTimeOf(now)},
	}
	for _, tx := range ct.CdtTrfTxInf {
		e2e := tx.PmtId.EndToEndId
		status := sts
		out := pacs.PaymentTransaction110{
			OrgnlGrpInf: &pacs.OriginalGroupInformation29{
				OrgnlMsgId:   ct.GrpHdr.MsgId,
				OrgnlMsgNmId: dt.Max35Text(ct.MessageID()),
			},
			OrgnlEndToEndId: &e2e,
			OrgnlTxId:       tx.PmtId.TxId,
			OrgnlUETR:       tx.PmtId.UETR,
			TxSts:           &status,
		}
		if reason != "" {
			cd := dt.Code(reason)
			out.StsRsnInf = []pacs.StatusReasonInformation12{{Rsn: &dt.CodeChoice{Value: &cd}}}
		}
		rpt.TxInfAndSts = append(rpt.TxInfAndSts, out)
	}
	return rpt, nil
}

// Header builds the AppHdr for msg sent from one routing number to another.
func (g *Generator) Header(msg iso.Message, msgID dt.Max35Text, from, to string) *head.BusinessApplicationHeaderV02 {
	return &head.BusinessApplicationHeaderV02{
		Fr:        head.Agent("USABA", from),
		To:        head.Agent("USABA", to),
		BizMsgIdr: msgID,
		MsgDefIdr: dt.Max35Text(msg.MessageID()),
		CreDt:     dt.DateTimeOf(g.opts.Now().UTC()),
	}
}

// Envelope wraps a fresh credit transfer and its header the way FedNow
// delivers it.
func (g *Generator) Envelope() (bizmsg.Envelope, error) {
	ct, err := g.CreditTransfer()
	if err != nil {
		return bizmsg.Envelope{}, err
	}
	return bizmsg.Envelope{
		Wrapper:  "FedNowCustomerCreditTransfer",
		Header:   g.Header(ct, ct.GrpHdr.MsgId, g.opts.DebtorAgent, g.opts.CreditorAgent),
		Document: iso.NewDocument(ct),
	}, nil
}

// messageID follows the FedNow layout: creation date, sender routing number,
// then a random suffix, 35 characters at most.
func (g *Generator) messageID(now time.Time, routing string) (string, error) {
	id, err := uuid.NewRandomFromReader(g.opts.Rand)
	if err != nil {
		return "", fmt.Errorf("sample: message id: %w", err)
	}
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	s := now.Format("20060102") + routing + suffix
	if len(s) > 35 {
		s = s[:35]
	}
	return s, nil
}

func party(name string) dt.PartyIdentification135 {
	nm := dt.Max140Text(name)
	ctry := dt.CountryCode("US")
	return dt.PartyIdentification135{
		Nm:      &nm,
		PstlAdr: &dt.PostalAddress24{Ctry: &ctry},
	}
}

func agent(routing string) dt.BranchAndFinancialInstitutionIdentification6 {
	sys := dt.ClearingSystemCode("USABA")
	return dt.BranchAndFinancialInstitutionIdentification6{
		FinInstnId: dt.FinancialInstitutionIdentification18{
			ClrSysMmbId: &dt.ClearingSystemMemberIdentification2{
				ClrSysId: &dt.ClearingSystemIdentification2Choice{Value: &sys},
				MmbId:    dt.Max35Text(routing),
			},
		},
	}
}
