// Package flows defines the consulting flow reference data: the ordered
// stage sequences for new-customer and existing-customer (ECM) consulting,
// and the customer segment vocabulary. The tables are immutable; selection
// of a stage subset is a per-run choice and never stored here.
package flows

// FlowType identifies a consulting flow.
type FlowType string

const (
	FlowNewCustomer FlowType = "new_customer"
	FlowECM         FlowType = "ecm"
)

// Segment identifies a customer tier.
type Segment string

const (
	SegmentMassMarket Segment = "mass_market"
	SegmentHNW        Segment = "hnw"
)

// Stage is one step of a consulting flow.
type Stage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
}

// Flow describes a consulting flow.
type Flow struct {
	ID          FlowType `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

// NewCustomerStages is the 7-stage flow for new prospects.
var NewCustomerStages = []Stage{
	{
		ID:          "opening",
		Name:        "Mở đầu & Tạo thiện cảm",
		Description: "Chào hỏi, tạo ấn tượng ban đầu, xây dựng mối quan hệ",
		Tips:        []string{"Tạo không khí thoải mái", "Tìm điểm chung", "Lắng nghe chủ động"},
	},
	{
		ID:          "need_discovery",
		Name:        "Khơi gợi & Thăm dò nhu cầu",
		Description: "Đặt câu hỏi thăm dò, tìm pain points và nỗi lo lắng",
		Tips:        []string{"Hỏi mở", "Không ngắt lời", "Ghi nhận cảm xúc"},
	},
	{
		ID:          "need_analysis",
		Name:        "Phân tích nhu cầu",
		Description: "Tổng hợp thông tin, giúp khách nhận ra nhu cầu ẩn",
		Tips:        []string{"Tóm tắt những gì đã nghe", "Kết nối với giải pháp", "Xác nhận lại hiểu đúng"},
	},
	{
		ID:          "solution_presentation",
		Name:        "Trình bày giải pháp",
		Description: "Giới thiệu sản phẩm, nêu bật quyền lợi và giá trị",
		Tips:        []string{"Tập trung vào lợi ích", "Dùng số liệu cụ thể", "Liên hệ với nhu cầu đã khám phá"},
	},
	{
		ID:          "objection_handling",
		Name:        "Xử lý từ chối",
		Description: "Đối mặt và xử lý các phản đối từ khách hàng",
		Tips:        []string{"Đồng cảm trước", "Không phản bác trực tiếp", "Đặt câu hỏi làm rõ"},
	},
	{
		ID:          "closing",
		Name:        "Chốt sale",
		Description: "Nhận diện tín hiệu mua hàng, chốt đơn",
		Tips:        []string{"Nhận diện buying signals", "Đề xuất bước tiếp theo", "Tạo urgency hợp lý"},
	},
	{
		ID:          "follow_up",
		Name:        "Follow-up",
		Description: "Liên hệ lại, xử lý khách đang suy nghĩ",
		Tips:        []string{"Theo dõi đúng hẹn", "Cung cấp thêm thông tin", "Duy trì mối quan hệ"},
	},
}

// ECMStages is the 6-stage flow for existing customers.
var ECMStages = []Stage{
	{
		ID:          "re_engagement",
		Name:        "Kết nối lại",
		Description: "Chào hỏi khách hàng cũ, cập nhật tình hình",
		Tips:        []string{"Nhắc lại mối quan hệ", "Hỏi thăm chân thành", "Cảm ơn sự tin tưởng"},
	},
	{
		ID:          "policy_review",
		Name:        "Kiểm tra hợp đồng hiện tại",
		Description: "Nhắc lại quyền lợi, xác nhận thông tin còn chính xác",
		Tips:        []string{"Tóm tắt quyền lợi đang có", "Cập nhật thay đổi sản phẩm", "Kiểm tra thông tin liên lạc"},
	},
	{
		ID:          "need_rediscovery",
		Name:        "Khám phá nhu cầu mới",
		Description: "Tìm hiểu thay đổi trong cuộc sống, gaps trong coverage",
		Tips:        []string{"Hỏi về life events", "Đánh giá lại nhu cầu", "Phát hiện gaps bảo hiểm"},
	},
	{
		ID:          "upsell_crosssell",
		Name:        "Đề xuất nâng cấp/mua thêm",
		Description: "Giới thiệu sản phẩm bổ sung, đề xuất nâng cấp",
		Tips:        []string{"Kết nối với nhu cầu mới", "Nêu giá trị gia tăng", "Đề xuất gói bundle"},
	},
	{
		ID:          "ecm_objection_handling",
		Name:        "Xử lý từ chối ECM",
		Description: "Xử lý phản đối đặc thù khách hàng cũ",
		Tips:        []string{"Công nhận đã có coverage", "Giải thích gaps", "Dùng relationship leverage"},
	},
	{
		ID:          "closing_referral",
		Name:        "Chốt & Xin giới thiệu",
		Description: "Chốt bán thêm, xin referral",
		Tips:        []string{"Tổng kết giá trị", "Xin giới thiệu tự nhiên", "Lên lịch gặp định kỳ"},
	},
}

// StagesFor returns the ordered stage list for a flow type.
// Any unrecognized flow type falls back to the new-customer list; callers
// depend on this default rather than receiving an error.
func StagesFor(flowType FlowType) []Stage {
	if flowType == FlowECM {
		return ECMStages
	}
	return NewCustomerStages
}

// ByID returns the flow descriptor for a flow type, defaulting to the
// new-customer flow for unrecognized values.
func ByID(flowType FlowType) Flow {
	if flowType == FlowECM {
		return Flow{
			ID:          FlowECM,
			Name:        "ECM",
			Description: "Luồng cho khách hàng hiện hữu",
		}
	}
	return Flow{
		ID:          FlowNewCustomer,
		Name:        "Khách hàng Mới",
		Description: "Luồng tư vấn cho khách hàng tiềm năng mới",
	}
}

// TransitionHints describes, per stage, the customer state a coach should
// look for before advancing past that stage.
var TransitionHints = map[string]string{
	"opening":               "Khách hàng đã cởi mở hơn, sẵn sàng chia sẻ về bản thân.",
	"need_discovery":        "Khách hàng đã chia sẻ một số nhu cầu và lo lắng.",
	"need_analysis":         "Khách hàng đã nhận ra một số nhu cầu của mình.",
	"solution_presentation": "Khách hàng đang lắng nghe về giải pháp.",
	"objection_handling":    "Khách hàng đưa ra một số từ chối cần xử lý.",
	"closing":               "Khách hàng đang cân nhắc quyết định.",
	"follow_up":             "Đây là cuộc gặp/liên hệ sau tư vấn ban đầu.",
}
