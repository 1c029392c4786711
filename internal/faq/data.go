package faq

// tables holds the static FAQ content per locale. Entry order matters:
// the matcher returns the first hit.
var tables = map[string]*Table{
	"en": {
		Greeting:       "Hello! I'm your ALF DANA assistant. How can I help you today?",
		HandoffMessage: "I'll connect you with our WhatsApp team for immediate assistance!",
		NoMatchMessage: "I'm not sure about that. Let me connect you with our team.",
		Entries: []Entry{
			{
				ID:       "services",
				Question: "What services do you offer?",
				Keywords: []string{"service", "offer", "provide", "do you", "what can"},
				Answer:   "We offer 8 main services: AC Maintenance, Plumbing, Electrical, Painting, Carpentry, Tiling, Deep Cleaning, and General Maintenance. Which one do you need help with?",
			},
			{
				ID:       "quote",
				Question: "How do I get a quote?",
				Keywords: []string{"quote", "price", "cost", "how much", "estimate", "rate", "charge"},
				Answer:   "Getting a quote is easy! Click the WhatsApp button and tell us your requirement. We'll respond within 1 hour with a detailed quote.",
			},
			{
				ID:       "areas",
				Question: "Which areas do you cover?",
				Keywords: []string{"area", "location", "cover", "where", "dubai", "abu dhabi", "sharjah", "ajman"},
				Answer:   "We cover all major areas in UAE: Dubai, Abu Dhabi, Sharjah, Ajman, Ras Al Khaimah, and Fujairah.",
			},
			{
				ID:       "response",
				Question: "How quickly can you respond?",
				Keywords: []string{"fast", "quick", "urgent", "emergency", "response", "how long", "when"},
				Answer:   "For emergencies, we respond within 1 hour. For scheduled work, we can arrange service within 24 hours.",
			},
			{
				ID:       "licensed",
				Question: "Are you licensed and insured?",
				Keywords: []string{"license", "insured", "certified", "official", "registered", "legal"},
				Answer:   "Yes! ALF DANA is fully licensed by UAE authorities and carries comprehensive insurance. All technicians are certified professionals.",
			},
			{
				ID:       "hours",
				Question: "What are your working hours?",
				Keywords: []string{"hours", "open", "available", "timing", "when", "schedule", "time"},
				Answer:   "Mon–Sat: 8:00 AM – 8:00 PM, Sunday: 9:00 AM – 5:00 PM. Emergency services available 24/7.",
			},
		},
	},
	"ar": {
		Greeting:       "مرحباً! أنا مساعد ألف دانا. كيف يمكنني مساعدتك اليوم؟",
		HandoffMessage: "سأتواصل معك مع فريقنا عبر واتساب للمساعدة الفورية!",
		NoMatchMessage: "لست متأكداً من ذلك. دعني أتواصل معك مع فريقنا.",
		Entries: []Entry{
			{
				ID:       "services",
				Question: "ما الخدمات التي تقدمونها؟",
				Keywords: []string{"خدمة", "خدمات", "تقديم", "ماذا", "ما هي"},
				Answer:   "نقدم 8 خدمات رئيسية: صيانة التكييف، السباكة، الكهرباء، الدهان، النجارة، التبليط، التنظيف العميق، والصيانة العامة.",
			},
			{
				ID:       "quote",
				Question: "كيف أحصل على عرض سعر؟",
				Keywords: []string{"عرض", "سعر", "تكلفة", "كم", "تسعير"},
				Answer:   "انقر على زر واتساب وأخبرنا بمتطلباتك. سنرد خلال ساعة بعرض سعر تفصيلي.",
			},
			{
				ID:       "areas",
				Question: "ما المناطق التي تغطونها؟",
				Keywords: []string{"منطقة", "مناطق", "دبي", "أبو ظبي", "الشارقة", "أين", "تغطية"},
				Answer:   "نغطي جميع المناطق الرئيسية في الإمارات: دبي وأبو ظبي والشارقة وعجمان ورأس الخيمة والفجيرة.",
			},
			{
				ID:       "response",
				Question: "كم يستغرق الرد؟",
				Keywords: []string{"سريع", "عاجل", "طوارئ", "كم يستغرق", "متى", "وقت"},
				Answer:   "للطوارئ نستجيب خلال ساعة واحدة. للعمل المجدول يمكننا ترتيب الخدمة خلال 24 ساعة.",
			},
			{
				ID:       "licensed",
				Question: "هل أنتم مرخصون ومؤمنون؟",
				Keywords: []string{"رخصة", "ترخيص", "مؤمن", "معتمد", "رسمي"},
				Answer:   "نعم! ألف دانا مرخصة بالكامل من سلطات الإمارات وتحمل تأميناً شاملاً. جميع فنيينا محترفون معتمدون.",
			},
			{
				ID:       "hours",
				Question: "ما هي ساعات العمل؟",
				Keywords: []string{"ساعات", "وقت", "متى", "مفتوح", "دوام"},
				Answer:   "الاثنين–السبت من 8 صباحاً حتى 8 مساءً، والأحد من 9 صباحاً حتى 5 مساءً. خدمات الطوارئ متاحة 24/7.",
			},
		},
	},
	"hi": {
		Greeting:       "नमस्ते! मैं ALF DANA का सहायक हूं। आज मैं आपकी कैसे मदद कर सकता हूं?",
		HandoffMessage: "तत्काल सहायता के लिए मैं आपको हमारी WhatsApp टीम से जोड़ूंगा!",
		NoMatchMessage: "मुझे इसके बारे में यकीन नहीं है। मैं आपको हमारी टीम से जोड़ता हूं।",
		Entries: []Entry{
			{
				ID:       "services",
				Question: "आप क्या सेवाएं प्रदान करते हैं?",
				Keywords: []string{"सेवा", "सेवाएं", "क्या", "कौन", "प्रदान"},
				Answer:   "हम 8 मुख्य सेवाएं प्रदान करते हैं: AC मेंटेनेंस, प्लम्बिंग, इलेक्ट्रिकल, पेंटिंग, कारपेंट्री, टाइलिंग, डीप क्लीनिंग और जनरल मेंटेनेंस।",
			},
			{
				ID:       "quote",
				Question: "कोटेशन कैसे मिलेगी?",
				Keywords: []string{"कोटेशन", "कीमत", "रेट", "कितना", "मूल्य"},
				Answer:   "WhatsApp बटन पर क्लिक करें और हमें अपनी आवश्यकता बताएं। हम 1 घंटे के भीतर विस्तृत कोटेशन देंगे।",
			},
			{
				ID:       "areas",
				Question: "आप कौन से क्षेत्रों में सेवा देते हैं?",
				Keywords: []string{"क्षेत्र", "जगह", "कहां", "दुबई", "अबु धाबी"},
				Answer:   "हम UAE के सभी प्रमुख क्षेत्रों में सेवा देते हैं: दुबई, अबु धाबी, शारजाह, अजमान, रास अल खैमाह और फुजैराह।",
			},
			{
				ID:       "response",
				Question: "जवाब में कितना समय लगता है?",
				Keywords: []string{"समय", "जल्दी", "इमरजेंसी", "कब", "कितना"},
				Answer:   "आपात स्थितियों के लिए 1 घंटे के भीतर प्रतिक्रिया। शेड्यूल काम के लिए 24 घंटे के भीतर सेवा।",
			},
			{
				ID:       "licensed",
				Question: "क्या आप लाइसेंस्ड और बीमाकृत हैं?",
				Keywords: []string{"लाइसेंस", "बीमा", "प्रमाणित", "आधिकारिक"},
				Answer:   "हां! ALF DANA UAE प्राधिकरणों द्वारा पूरी तरह लाइसेंस्ड है। हमारे सभी तकनीशियन प्रमाणित पेशेवर हैं।",
			},
			{
				ID:       "hours",
				Question: "काम के घंटे क्या हैं?",
				Keywords: []string{"घंटे", "समय", "खुला", "कब", "उपलब्ध"},
				Answer:   "सोमवार–शनिवार 8:00 AM से 8:00 PM, रविवार 9:00 AM से 5:00 PM। आपात सेवाएं 24/7 उपलब्ध हैं।",
			},
		},
	},
	"ur": {
		Greeting:       "سلام! میں ALF DANA کا معاون ہوں۔ آج میں آپ کی کیسے مدد کر سکتا ہوں؟",
		HandoffMessage: "فوری مدد کے لیے میں آپ کو ہماری WhatsApp ٹیم سے جوڑوں گا!",
		NoMatchMessage: "مجھے اس بارے میں یقین نہیں۔ میں آپ کو ہماری ٹیم سے جوڑتا ہوں۔",
		Entries: []Entry{
			{
				ID:       "services",
				Question: "آپ کون سی خدمات فراہم کرتے ہیں؟",
				Keywords: []string{"خدمت", "خدمات", "کیا", "کون", "فراہم"},
				Answer:   "ہم 8 اہم خدمات فراہم کرتے ہیں: AC مینٹیننس، پلمبنگ، الیکٹریکل، پینٹنگ، نجاری، ٹائلنگ، ڈیپ کلیننگ اور جنرل مینٹیننس۔",
			},
			{
				ID:       "quote",
				Question: "قیمت کیسے ملے گی؟",
				Keywords: []string{"قیمت", "کتنا", "ریٹ", "خرچہ", "تخمینہ"},
				Answer:   "WhatsApp بٹن پر کلک کریں اور ہمیں اپنی ضرورت بتائیں۔ ہم 1 گھنٹے کے اندر تفصیلی قیمت دیں گے۔",
			},
			{
				ID:       "areas",
				Question: "آپ کون سے علاقوں میں خدمت دیتے ہیں؟",
				Keywords: []string{"علاقہ", "کہاں", "دبئی", "ابوظہبی", "شارجہ"},
				Answer:   "ہم UAE کے تمام بڑے علاقوں میں خدمت دیتے ہیں: دبئی، ابوظہبی، شارجہ، عجمان، رأس الخیمہ اور فجیرہ۔",
			},
			{
				ID:       "response",
				Question: "جواب میں کتنا وقت لگتا ہے؟",
				Keywords: []string{"وقت", "جلدی", "ہنگامی", "کب", "کتنا"},
				Answer:   "ہنگامی صورتوں میں 1 گھنٹے کے اندر ردعمل۔ شیڈول کام کے لیے 24 گھنٹوں کے اندر خدمت۔",
			},
			{
				ID:       "licensed",
				Question: "کیا آپ لائسنس یافتہ اور بیمہ شدہ ہیں؟",
				Keywords: []string{"لائسنس", "بیمہ", "سند", "سرکاری"},
				Answer:   "جی ہاں! ALF DANA UAE حکام کے ذریعے مکمل لائسنس یافتہ ہے۔ ہمارے تمام ٹیکنیشن سند یافتہ پیشہ ور ہیں۔",
			},
			{
				ID:       "hours",
				Question: "کام کے اوقات کیا ہیں؟",
				Keywords: []string{"اوقات", "وقت", "کھلا", "کب"},
				Answer:   "پیر سے ہفتہ 8:00 AM سے 8:00 PM اور اتوار 9:00 AM سے 5:00 PM۔ ہنگامی خدمات 24/7 دستیاب ہیں۔",
			},
		},
	},
	"zh": {
		Greeting:       "您好！我是ALF DANA助手。今天我能为您做什么？",
		HandoffMessage: "我将为您连接我们的WhatsApp团队以获得即时帮助！",
		NoMatchMessage: "我不确定这一点。让我为您连接我们的团队。",
		Entries: []Entry{
			{
				ID:       "services",
				Question: "您提供哪些服务？",
				Keywords: []string{"服务", "提供", "什么", "哪些"},
				Answer:   "我们提供8项主要服务：空调维护、管道工程、电气工程、油漆工程、木工、铺砖、深度清洁和综合维护。",
			},
			{
				ID:       "quote",
				Question: "如何获取报价？",
				Keywords: []string{"报价", "价格", "多少钱", "费用", "收费"},
				Answer:   "点击WhatsApp按钮，告诉我们您的需求。我们将在1小时内回复详细报价。",
			},
			{
				ID:       "areas",
				Question: "您覆盖哪些地区？",
				Keywords: []string{"地区", "位置", "哪里", "迪拜", "阿布扎比"},
				Answer:   "我们覆盖阿联酋所有主要地区：迪拜、阿布扎比、沙迦、阿治曼、哈伊马角和富查伊拉。",
			},
			{
				ID:       "response",
				Question: "响应速度如何？",
				Keywords: []string{"快速", "紧急", "多快", "时间", "多长"},
				Answer:   "紧急情况下1小时内响应。计划工程通常可在24小时内安排服务。",
			},
			{
				ID:       "licensed",
				Question: "你们有许可证和保险吗？",
				Keywords: []string{"许可证", "保险", "认证", "官方"},
				Answer:   "是的！ALF DANA获得阿联酋当局完全许可，持有全面保险。所有技术人员都是认证专业人士。",
			},
			{
				ID:       "hours",
				Question: "工作时间是什么？",
				Keywords: []string{"时间", "营业", "开放", "何时"},
				Answer:   "周一至周六8:00 AM至8:00 PM，周日9:00 AM至5:00 PM。24/7提供紧急服务。",
			},
		},
	},
}
