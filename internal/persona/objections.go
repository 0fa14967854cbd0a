package persona

// Objection groups the common variations of one refusal category.
type Objection struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Variations []string `json:"variations"`
}

// CommonObjections lists the refusal categories in fixed order. The first
// two entries seed the roleplay system prompt when the customer profile
// carries no objections of its own.
var CommonObjections = []Objection{
	{
		Key:   "no_money",
		Label: "Không có tiền",
		Variations: []string{
			"Tôi không có tiền đóng bảo hiểm đâu.",
			"Bây giờ kinh tế khó khăn lắm.",
			"Thu nhập tôi không đủ.",
			"Còn nhiều khoản phải lo hơn.",
			"Phí này cao quá so với thu nhập.",
		},
	},
	{
		Key:   "already_have",
		Label: "Đã có bảo hiểm",
		Variations: []string{
			"Tôi đã có bảo hiểm rồi.",
			"Công ty tôi đã mua cho rồi.",
			"Vợ/chồng tôi đã mua rồi.",
			"Đủ rồi, không cần thêm.",
			"Bảo hiểm xã hội đủ rồi.",
		},
	},
	{
		Key:   "need_time",
		Label: "Cần thời gian suy nghĩ",
		Variations: []string{
			"Để tôi suy nghĩ thêm.",
			"Để tôi bàn với gia đình đã.",
			"Từ từ, không vội.",
			"Tháng sau gặp lại nhé.",
			"Bây giờ chưa phải lúc.",
		},
	},
	{
		Key:   "no_trust",
		Label: "Không tin bảo hiểm",
		Variations: []string{
			"Tôi không tin bảo hiểm.",
			"Nghe nhiều chuyện từ chối bồi thường lắm.",
			"Bảo hiểm chỉ có lợi cho công ty thôi.",
			"Mua xong không thấy được gì.",
			"Toàn lừa đảo.",
		},
	},
	{
		Key:   "consult_others",
		Label: "Cần hỏi ý kiến người khác",
		Variations: []string{
			"Để tôi hỏi vợ/chồng đã.",
			"Phải bàn với bố mẹ.",
			"Để tôi tham khảo thêm.",
			"Có người quen trong ngành, để hỏi họ.",
			"Bạn tôi làm bảo hiểm, để nhờ tư vấn.",
		},
	},
	{
		Key:   "not_now",
		Label: "Chưa cần bây giờ",
		Variations: []string{
			"Tôi còn trẻ, chưa cần.",
			"Sức khỏe tôi tốt lắm.",
			"Khi nào có con rồi tính.",
			"Chờ ổn định công việc đã.",
			"Sang năm mua cũng được.",
		},
	},
}

// DefaultObjectionSamples returns the first variation of the first n
// objection categories, used when a customer has no objections listed.
func DefaultObjectionSamples(n int) []string {
	if n > len(CommonObjections) {
		n = len(CommonObjections)
	}
	samples := make([]string, 0, n)
	for _, o := range CommonObjections[:n] {
		samples = append(samples, o.Variations[0])
	}
	return samples
}
