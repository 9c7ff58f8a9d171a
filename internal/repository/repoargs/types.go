package repoargs

type RepositoryName string

const (
	AdminUserRepoName    RepositoryName = "admin_user"
	SellerRepoName       RepositoryName = "seller"
	CustomerRepoName     RepositoryName = "customer"
	OrderRepoName        RepositoryName = "order"
	ProductRepoName      RepositoryName = "product"
	WithdrawalRepoName   RepositoryName = "withdrawal"
	BannerRepoName       RepositoryName = "banner"
	AnnouncementRepoName RepositoryName = "announcement"
	AuditLogRepoName     RepositoryName = "audit_log"
	ReportRepoName       RepositoryName = "report"
)

const (
	defaultPageSize uint = 20
	maxPageSize     uint = 100
)

// Pagination постраничные параметры списков. Page нумеруется с единицы.
type Pagination struct {
	Page  uint
	Limit uint
}

// Normalize приводит параметры к допустимым значениям: страница минимум 1,
// limit в пределах (0, maxPageSize].
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 || p.Limit > maxPageSize {
		p.Limit = defaultPageSize
	}
	return p
}

func (p Pagination) Offset() uint {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}
