package admin

type inventory struct {
	createdAt string
	stock     int
}

var inventoryBySlug = map[string]inventory{
	"kcse-mathematics-form-4-octopus-revision":    {createdAt: "2024-01-10T08:00:00", stock: 150},
	"kcse-chemistry-form-3-visual-notes":          {createdAt: "2024-01-11T09:15:00", stock: 120},
	"kcse-english-form-2-comprehension-practice":  {createdAt: "2024-01-12T10:30:00", stock: 200},
	"kcse-biology-form-4-diagram-atlas":           {createdAt: "2024-01-13T11:00:00", stock: 180},
	"kcse-physics-form-3-exam-practice":           {createdAt: "2024-01-14T14:20:00", stock: 95},
	"kcse-business-studies-form-4-revision-guide": {createdAt: "2024-01-15T08:45:00", stock: 110},
	"kcse-history-form-2-topic-notes":             {createdAt: "2024-01-16T10:00:00", stock: 140},
	"kcse-cre-form-4-chapter-review":              {createdAt: "2024-01-17T09:30:00", stock: 160},
}

const (
	mathsSlug    = "kcse-mathematics-form-4-octopus-revision"
	mathsTitle   = "KCSE Mathematics Revision · Form 4 (Octopus Method)"
	chemSlug     = "kcse-chemistry-form-3-visual-notes"
	chemTitle    = "KCSE Chemistry Past Papers · Form 3 Visual Notes"
	englishSlug  = "kcse-english-form-2-comprehension-practice"
	englishTitle = "KCSE English Comprehension · Form 2 Practice"
	bioSlug      = "kcse-biology-form-4-diagram-atlas"
	bioTitle     = "KCSE Biology Diagrams · Form 4 Revision Atlas"
	physicsSlug  = "kcse-physics-form-3-exam-practice"
	physicsTitle = "KCSE Physics Exam Practice · Form 3"
	bizSlug      = "kcse-business-studies-form-4-revision-guide"
	bizTitle     = "KCSE Business Studies · Form 4 Revision Guide"
	historySlug  = "kcse-history-form-2-topic-notes"
	historyTitle = "KCSE History & Government · Form 2 Topic Notes"
	creSlug      = "kcse-cre-form-4-chapter-review"
	creTitle     = "KCSE C.R.E. · Form 4 Chapter Review"
)

var mockOrders = []Order{
	{
		ID: "ORD-2024-001", Status: StatusPaid, Amount: 2500, Date: "2024-01-15T10:30:00",
		Customer:        Customer{Name: "John Doe", Email: "john.doe@example.com", Phone: "+254712345678"},
		Items:           []Item{{mathsSlug, mathsTitle, 2, 850}, {englishSlug, englishTitle, 1, 780}},
		PaymentMethod:   "M-Pesa",
		ShippingAddress: "123 Main Street, Nairobi, Kenya",
	},
	{
		ID: "ORD-2024-002", Status: StatusPending, Amount: 1800, Date: "2024-01-16T14:20:00",
		Customer:        Customer{Name: "Jane Smith", Email: "jane.smith@example.com", Phone: "+254723456789"},
		Items:           []Item{{chemSlug, chemTitle, 1, 920}, {historySlug, historyTitle, 1, 760}},
		PaymentMethod:   "M-Pesa",
		ShippingAddress: "456 Park Avenue, Mombasa, Kenya",
	},
	{
		ID: "ORD-2024-003", Status: StatusPaid, Amount: 3200, Date: "2024-01-16T16:45:00",
		Customer:        Customer{Name: "Michael Johnson", Email: "michael.j@example.com", Phone: "+254734567890"},
		Items:           []Item{{bioSlug, bioTitle, 2, 990}, {physicsSlug, physicsTitle, 1, 930}},
		PaymentMethod:   "Bank Transfer",
		ShippingAddress: "789 Oak Road, Kisumu, Kenya",
	},
	{
		ID: "ORD-2024-004", Status: StatusFailed, Amount: 990, Date: "2024-01-17T09:15:00",
		Customer:        Customer{Name: "Sarah Williams", Email: "sarah.w@example.com", Phone: "+254745678901"},
		Items:           []Item{{bioSlug, bioTitle, 1, 990}},
		PaymentMethod:   "M-Pesa",
		ShippingAddress: "321 Elm Street, Nakuru, Kenya",
	},
	{
		ID: "ORD-2024-005", Status: StatusPending, Amount: 2100, Date: "2024-01-17T11:30:00",
		Customer:        Customer{Name: "David Brown", Email: "david.brown@example.com", Phone: "+254756789012"},
		Items:           []Item{{bizSlug, bizTitle, 2, 800}, {creSlug, creTitle, 1, 720}},
		PaymentMethod:   "M-Pesa",
		ShippingAddress: "654 Pine Avenue, Eldoret, Kenya",
	},
	{
		ID: "ORD-2024-006", Status: StatusPaid, Amount: 1560, Date: "2024-01-18T08:00:00",
		Customer:        Customer{Name: "Emily Davis", Email: "emily.davis@example.com", Phone: "+254767890123"},
		Items:           []Item{{historySlug, historyTitle, 2, 760}},
		PaymentMethod:   "M-Pesa",
		ShippingAddress: "987 Maple Drive, Thika, Kenya",
	},
	{
		ID: "ORD-2024-007", Status: StatusPaid, Amount: 2760, Date: "2024-01-18T13:20:00",
		Customer:        Customer{Name: "Robert Wilson", Email: "robert.w@example.com", Phone: "+254778901234"},
		Items:           []Item{{mathsSlug, mathsTitle, 1, 850}, {chemSlug, chemTitle, 1, 920}, {physicsSlug, physicsTitle, 1, 930}},
		PaymentMethod:   "Bank Transfer",
		ShippingAddress: "147 Cedar Lane, Nyeri, Kenya",
	},
	{
		ID: "ORD-2024-008", Status: StatusPending, Amount: 1440, Date: "2024-01-19T10:10:00",
		Customer:        Customer{Name: "Lisa Anderson", Email: "lisa.a@example.com", Phone: "+254789012345"},
		Items:           []Item{{englishSlug, englishTitle, 1, 780}, {creSlug, creTitle, 1, 720}},
		PaymentMethod:   "M-Pesa",
		ShippingAddress: "258 Birch Street, Machakos, Kenya",
	},
}
