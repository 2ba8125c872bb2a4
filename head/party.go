package head

import (
	iso "github.com/open-payments/iso20022"
	dt "github.com/open-payments/iso20022/datatype"
)

// PartyAlternative is an arm of Party44Choice.
type PartyAlternative interface {
	iso.Alternative
	isParty44()
}

// Organisation identifies a non-financial sender or receiver.
type Organisation struct {
	dt.PartyIdentification135
}

func (Organisation) ChoiceTag() string { return "OrgId" }
func (Organisation) isParty44()        {}

// FinancialInstitution identifies an agent, the usual case on FedNow.
type FinancialInstitution struct {
	dt.BranchAndFinancialInstitutionIdentification6
}

func (FinancialInstitution) ChoiceTag() string { return "FIId" }
func (FinancialInstitution) isParty44()        {}

type partyAlternatives struct{}

func (partyAlternatives) Group() string { return "Party44Choice" }

func (partyAlternatives) New(tag string) (PartyAlternative, bool) {
	switch tag {
	case "OrgId":
		return new(Organisation), true
	case "FIId":
		return new(FinancialInstitution), true
	}
	return nil, false
}

type Party44Choice = iso.Choice[PartyAlternative, partyAlternatives]

// Agent is a Party44Choice selecting a financial institution by clearing
// system member id, the FedNow routing number form.
func Agent(clearingSystem, memberID string) Party44Choice {
	cd := dt.ClearingSystemCode(clearingSystem)
	var id dt.ClearingSystemIdentification2Choice
	id.Value = &cd
	return Party44Choice{Value: &FinancialInstitution{
		dt.BranchAndFinancialInstitutionIdentification6{
			FinInstnId: dt.FinancialInstitutionIdentification18{
				ClrSysMmbId: &dt.ClearingSystemMemberIdentification2{
					ClrSysId: &id,
					MmbId:    dt.Max35Text(memberID),
				},
			},
		},
	}}
}
