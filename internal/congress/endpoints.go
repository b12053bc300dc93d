package congress

import (
	"fmt"
	"strings"
)

// Resource identifies one upstream collection. Its value is the URL path root
// under the API base, e.g. "committee-report" for /committee-report/...
type Resource string

const (
	ResourceBill                     Resource = "bill"
	ResourceAmendment                Resource = "amendment"
	ResourceLaw                      Resource = "law"
	ResourceSummaries                Resource = "summaries"
	ResourceCongress                 Resource = "congress"
	ResourceMember                   Resource = "member"
	ResourceCommittee                Resource = "committee"
	ResourceCommitteeReport          Resource = "committee-report"
	ResourceCommitteePrint           Resource = "committee-print"
	ResourceCommitteeMeeting         Resource = "committee-meeting"
	ResourceHearing                  Resource = "hearing"
	ResourceCongressionalRecord      Resource = "congressional-record"
	ResourceDailyCongressionalRecord Resource = "daily-congressional-record"
	ResourceBoundCongressionalRecord Resource = "bound-congressional-record"
	ResourceHouseCommunication       Resource = "house-communication"
	ResourceHouseRequirement         Resource = "house-requirement"
	ResourceHouseVote                Resource = "house-vote"
	ResourceSenateCommunication      Resource = "senate-communication"
	ResourceNomination               Resource = "nomination"
	ResourceCRSReport                Resource = "crsreport"
	ResourceTreaty                   Resource = "treaty"
)

var catalog = []Resource{
	ResourceBill,
	ResourceAmendment,
	ResourceLaw,
	ResourceSummaries,
	ResourceCongress,
	ResourceMember,
	ResourceCommittee,
	ResourceCommitteeReport,
	ResourceCommitteePrint,
	ResourceCommitteeMeeting,
	ResourceHearing,
	ResourceCongressionalRecord,
	ResourceDailyCongressionalRecord,
	ResourceBoundCongressionalRecord,
	ResourceHouseCommunication,
	ResourceHouseRequirement,
	ResourceHouseVote,
	ResourceSenateCommunication,
	ResourceNomination,
	ResourceCRSReport,
	ResourceTreaty,
}

var catalogSet = func() map[Resource]struct{} {
	set := make(map[Resource]struct{}, len(catalog))
	for _, resource := range catalog {
		set[resource] = struct{}{}
	}
	return set
}()

// Resources returns the full catalog in its documented order.
func Resources() []Resource {
	out := make([]Resource, len(catalog))
	copy(out, catalog)
	return out
}

// ParseResource maps a user-supplied identifier to a catalog entry. Both
// hyphenated and underscored spellings are accepted ("committee-report",
// "committee_report").
func ParseResource(name string) (Resource, error) {
	normalized := Resource(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-"))
	if _, ok := catalogSet[normalized]; !ok {
		return "", fmt.Errorf("unknown resource %q", name)
	}
	return normalized, nil
}
