package view

import "github.com/aussiebroadwan/hirejoy/internal/pipeline/domain"

// keySep joins company and role in a group key. The unit separator cannot
// appear in anything typed into a form.
const keySep = "\x1f"

// GroupKey identifies a company/role section for expand and collapse.
func GroupKey(company, role string) string {
	return company + keySep + role
}

// RoleGroup is a leaf of the sections view.
type RoleGroup struct {
	Key        string
	Role       string
	Candidates []domain.Candidate
	Expanded   bool
}

// CompanySection holds every role group of one company.
type CompanySection struct {
	Company string
	Roles   []RoleGroup
}

// StageColumn is one column of the board view.
type StageColumn struct {
	Stage      domain.StageDescriptor
	Candidates []domain.Candidate
}

// GroupByCompanyRole partitions cs by exact company then exact role. Groups
// appear in the order their first member does, and members keep their
// relative order. Keys present in collapsed are marked not expanded.
func GroupByCompanyRole(cs []domain.Candidate, collapsed map[string]bool) []CompanySection {
	var sections []CompanySection
	companyAt := map[string]int{}
	roleAt := map[string]int{}

	for _, c := range cs {
		ci, ok := companyAt[c.Company]
		if !ok {
			ci = len(sections)
			companyAt[c.Company] = ci
			sections = append(sections, CompanySection{Company: c.Company})
		}

		key := GroupKey(c.Company, c.Role)
		ri, ok := roleAt[key]
		if !ok {
			ri = len(sections[ci].Roles)
			roleAt[key] = ri
			sections[ci].Roles = append(sections[ci].Roles, RoleGroup{
				Key:      key,
				Role:     c.Role,
				Expanded: !collapsed[key],
			})
		}

		g := &sections[ci].Roles[ri]
		g.Candidates = append(g.Candidates, c)
	}
	return sections
}

// GroupByStage returns one column per stage in pipeline order, empty columns
// included.
func GroupByStage(cs []domain.Candidate) []StageColumn {
	cols := make([]StageColumn, len(domain.Stages))
	for i, d := range domain.Descriptors() {
		cols[i].Stage = d
	}
	for _, c := range cs {
		if !c.Stage.Valid() {
			continue
		}
		cols[c.Stage].Candidates = append(cols[c.Stage].Candidates, c)
	}
	return cols
}
