package database

import (
	"log"

	"mzrun/config"
	"mzrun/models"
	courseModels "mzrun/models/course"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedReferenceData populates categories and a demo catalog when the tables
// are empty, and provisions the admin account when configured via env.
func SeedReferenceData(db *gorm.DB) {
	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	if categoryCount == 0 {
		seedCategories(db)
	}

	var courseCount int64
	db.Model(&courseModels.Course{}).Count(&courseCount)
	if courseCount == 0 {
		seedCourses(db)
	}

	seedAdminUser(db)
}

func seedCategories(db *gorm.DB) {
	categories := []models.Category{
		{ID: "all", Label: "전체"},
		{ID: "dev", Label: "개발"},
		{ID: "ai", Label: "AI"},
		{ID: "data", Label: "데이터"},
		{ID: "design", Label: "디자인"},
		{ID: "business", Label: "비즈니스"},
		{ID: "marketing", Label: "마케팅"},
		{ID: "language", Label: "외국어"},
	}

	if err := db.Create(&categories).Error; err != nil {
		log.Printf("Error seeding categories: %v", err)
		return
	}
	log.Println("Categories seeded.")
}

func seedAdminUser(db *gorm.DB) {
	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	if err := db.Where("email = ?", cfg.AdminEmail).First(&models.User{}).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "MZRUN Admin",
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		Role:     "ADMIN",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error seeding admin user: %v", err)
		return
	}
	log.Println("Admin user seeded.")
}

func seedCourses(db *gorm.DB) {
	courses := []courseModels.Course{
		{
			Title:           "실전! Next.js 15 완벽 마스터",
			Instructor:      "김개발",
			InstructorImage: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop",
			InstructorBio:   "네이버 시니어 프론트엔드 개발자 출신. 10년간 다양한 대규모 서비스를 개발해왔으며, 현재는 프리랜서로 활동하며 개발 교육에 힘쓰고 있습니다.",
			Price:           89000,
			OriginalPrice:   129000,
			Rating:          4.9,
			ReviewCount:     1234,
			StudentCount:    5678,
			Image:           "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400&h=250&fit=crop",
			Tags:            `["NEW","할인중"]`,
			Category:        "dev",
			Description:     "Next.js 15의 새로운 기능부터 실무에서 바로 활용할 수 있는 프로젝트까지! App Router, Server Actions, 그리고 최신 React 19 기능들을 마스터하세요.",
			Level:           "중급",
			WhatYouLearn: datatypes.JSON(`["Next.js 15의 새로운 기능과 App Router 완벽 이해","Server Components와 Client Components의 올바른 사용법","Server Actions를 활용한 풀스택 개발","React 19의 새로운 훅과 기능들","실무에서 바로 쓸 수 있는 인증, 결제 시스템 구현","성능 최적화와 SEO 전략"]`),
			Requirements: datatypes.JSON(`["React 기본 문법을 알고 있어야 합니다","JavaScript ES6+ 문법에 익숙해야 합니다","HTML/CSS 기본 지식이 필요합니다"]`),
			TotalHours:    32,
			TotalLectures: 156,
			LastUpdated:   "2024년 11월",
			Curriculum: datatypes.JSON(`[
				{"title":"섹션 1: Next.js 15 소개","lectures":[
					{"title":"강의 소개 및 학습 목표","duration":"5:30","preview":true},
					{"title":"Next.js 15의 새로운 기능들","duration":"12:45","preview":true},
					{"title":"개발 환경 설정","duration":"8:20","preview":false}]},
				{"title":"섹션 2: App Router 기초","lectures":[
					{"title":"App Router vs Pages Router","duration":"15:00","preview":false},
					{"title":"파일 기반 라우팅 이해하기","duration":"18:30","preview":false},
					{"title":"레이아웃과 템플릿","duration":"14:20","preview":false}]},
				{"title":"섹션 3: Server Components","lectures":[
					{"title":"Server Components란?","duration":"10:15","preview":false},
					{"title":"클라이언트 vs 서버 컴포넌트","duration":"22:00","preview":false},
					{"title":"데이터 페칭 패턴","duration":"25:30","preview":false}]}
			]`),
		},
		{
			Title:           "GPT와 함께하는 AI 서비스 개발",
			Instructor:      "이에이아이",
			InstructorImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop",
			InstructorBio:   "AI 스타트업 CTO 출신. OpenAI API를 활용한 다양한 서비스를 개발했으며, AI 기술의 대중화를 위해 교육 활동을 하고 있습니다.",
			Price:           109000,
			OriginalPrice:   159000,
			Rating:          4.8,
			ReviewCount:     856,
			StudentCount:    3421,
			Image:           "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=400&h=250&fit=crop",
			Tags:            `["베스트","할인중"]`,
			Category:        "ai",
			Description:     "OpenAI API를 활용하여 실제 서비스를 만들어보는 실전 프로젝트 강의입니다. ChatGPT, DALL-E, Whisper 등 다양한 AI 모델을 활용합니다.",
			Level:           "중급",
			WhatYouLearn: datatypes.JSON(`["OpenAI API 완벽 활용법","ChatGPT를 활용한 챗봇 서비스 개발","DALL-E를 활용한 이미지 생성 서비스","Whisper를 활용한 음성 인식 기능 구현","프롬프트 엔지니어링 기법","AI 서비스 배포 및 운영"]`),
			Requirements: datatypes.JSON(`["Python 또는 JavaScript 기본 문법","REST API에 대한 기본 이해","OpenAI API 키 (무료 크레딧 사용 가능)"]`),
			TotalHours:    28,
			TotalLectures: 124,
			LastUpdated:   "2024년 10월",
			Curriculum: datatypes.JSON(`[
				{"title":"섹션 1: OpenAI API 시작하기","lectures":[
					{"title":"OpenAI API 소개","duration":"8:00","preview":true},
					{"title":"API 키 발급 및 설정","duration":"6:30","preview":true},
					{"title":"첫 번째 API 호출","duration":"10:00","preview":false}]},
				{"title":"섹션 2: ChatGPT API 활용","lectures":[
					{"title":"Chat Completions API 이해","duration":"15:00","preview":false},
					{"title":"대화 컨텍스트 관리","duration":"12:00","preview":false},
					{"title":"스트리밍 응답 처리","duration":"18:00","preview":false}]}
			]`),
		},
		{
			Title:           "Python 데이터 분석 마스터클래스",
			Instructor:      "박데이터",
			InstructorImage: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop",
			InstructorBio:   "삼성전자 데이터 사이언티스트 출신. 대용량 데이터 분석 및 머신러닝 프로젝트 다수 경험.",
			Price:           79000,
			OriginalPrice:   99000,
			Rating:          4.7,
			ReviewCount:     2341,
			StudentCount:    8765,
			Image:           "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400&h=250&fit=crop",
			Tags:            `["베스트"]`,
			Category:        "data",
			Description:     "Pandas, NumPy, Matplotlib을 활용한 실전 데이터 분석! 실제 데이터셋으로 배우는 데이터 분석의 모든 것.",
			Level:           "입문",
			WhatYouLearn: datatypes.JSON(`["Python 데이터 분석 기초","Pandas를 활용한 데이터 처리","NumPy를 활용한 수치 연산","Matplotlib/Seaborn 시각화","실전 데이터 분석 프로젝트"]`),
			Requirements: datatypes.JSON(`["Python 기본 문법","기초 통계 지식 (선택)"]`),
			TotalHours:    24,
			TotalLectures: 98,
			LastUpdated:   "2024년 9월",
			Curriculum:    datatypes.JSON(`[]`),
		},
		{
			Title:           "Figma 웹디자인 실무 완성",
			Instructor:      "최디자인",
			InstructorImage: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop",
			InstructorBio:   "토스 프로덕트 디자이너 출신. UI/UX 디자인 7년 경력.",
			Price:           69000,
			OriginalPrice:   89000,
			Rating:          4.9,
			ReviewCount:     1567,
			StudentCount:    4532,
			Image:           "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=400&h=250&fit=crop",
			Tags:            `["NEW"]`,
			Category:        "design",
			Description:     "Figma로 배우는 현업 디자인 워크플로우. 디자인 시스템부터 프로토타이핑까지!",
			Level:           "입문",
			WhatYouLearn: datatypes.JSON(`["Figma 기본 도구 마스터","컴포넌트와 변형","디자인 시스템 구축","프로토타이핑","협업 워크플로우"]`),
			Requirements: datatypes.JSON(`["디자인 경험 불필요","Figma 계정 (무료)"]`),
			TotalHours:    18,
			TotalLectures: 72,
			LastUpdated:   "2024년 11월",
			Curriculum:    datatypes.JSON(`[]`),
		},
		{
			Title:           "스타트업 마케팅 A to Z",
			Instructor:      "정마케팅",
			InstructorImage: "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=100&h=100&fit=crop",
			InstructorBio:   "쿠팡 그로스 마케터 출신. 다수의 스타트업 마케팅 컨설팅 경험.",
			Price:           59000,
			OriginalPrice:   79000,
			Rating:          4.6,
			ReviewCount:     892,
			StudentCount:    2156,
			Image:           "https://images.unsplash.com/photo-1533750349088-cd871a92f312?w=400&h=250&fit=crop",
			Tags:            `["할인중"]`,
			Category:        "marketing",
			Description:     "제한된 예산으로 최대의 효과를! 스타트업을 위한 실전 마케팅 전략.",
			Level:           "입문",
			WhatYouLearn: datatypes.JSON(`["그로스 마케팅 기초","퍼포먼스 마케팅","콘텐츠 마케팅","SNS 마케팅","데이터 기반 의사결정"]`),
			Requirements: datatypes.JSON(`["마케팅 경험 불필요"]`),
			TotalHours:    15,
			TotalLectures: 56,
			LastUpdated:   "2024년 8월",
			Curriculum:    datatypes.JSON(`[]`),
		},
		{
			Title:           "비즈니스 영어 회화 마스터",
			Instructor:      "Sarah Kim",
			InstructorImage: "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=100&h=100&fit=crop",
			InstructorBio:   "전 Google 채용담당자. 비즈니스 영어 전문 강사 10년.",
			Price:           49000,
			OriginalPrice:   69000,
			Rating:          4.8,
			ReviewCount:     3421,
			StudentCount:    12543,
			Image:           "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=400&h=250&fit=crop",
			Tags:            `["베스트","할인중"]`,
			Category:        "language",
			Description:     "실제 비즈니스 상황에서 사용하는 영어 회화! 회의, 프레젠테이션, 이메일 작성까지.",
			Level:           "입문",
			WhatYouLearn: datatypes.JSON(`["비즈니스 미팅 영어","프레젠테이션 영어","이메일/보고서 작성","협상 영어","네트워킹 영어"]`),
			Requirements: datatypes.JSON(`["기초 영어 회화 가능자"]`),
			TotalHours:    20,
			TotalLectures: 80,
			LastUpdated:   "2024년 10월",
			Curriculum:    datatypes.JSON(`[]`),
		},
		{
			Title:           "React Native 모바일 앱 개발",
			Instructor:      "김앱개발",
			InstructorImage: "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=100&h=100&fit=crop",
			InstructorBio:   "카카오 모바일 개발팀 출신. iOS/Android 앱 다수 출시.",
			Price:           99000,
			OriginalPrice:   149000,
			Rating:          4.7,
			ReviewCount:     1123,
			StudentCount:    3892,
			Image:           "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?w=400&h=250&fit=crop",
			Tags:            `["NEW","할인중"]`,
			Category:        "dev",
			Description:     "React Native로 iOS와 Android 앱을 동시에 개발하는 방법을 배웁니다.",
			Level:           "중급",
			WhatYouLearn: datatypes.JSON(`["React Native 기초","네이티브 모듈 연동","상태 관리","앱 배포"]`),
			Requirements: datatypes.JSON(`["React 기본 지식","JavaScript ES6+"]`),
			TotalHours:    26,
			TotalLectures: 112,
			LastUpdated:   "2024년 11월",
			Curriculum:    datatypes.JSON(`[]`),
		},
		{
			Title:           "AWS 클라우드 아키텍처",
			Instructor:      "이클라우드",
			InstructorImage: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop",
			InstructorBio:   "AWS 솔루션스 아키텍트. 대기업 클라우드 마이그레이션 다수 수행.",
			Price:           129000,
			OriginalPrice:   179000,
			Rating:          4.9,
			ReviewCount:     756,
			StudentCount:    2341,
			Image:           "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=400&h=250&fit=crop",
			Tags:            `["베스트"]`,
			Category:        "dev",
			Description:     "AWS 핵심 서비스부터 실전 아키텍처 설계까지. SAA 자격증 준비에도 적합!",
			Level:           "중급",
			WhatYouLearn: datatypes.JSON(`["AWS 핵심 서비스","네트워크 설계","보안 아키텍처","비용 최적화"]`),
			Requirements: datatypes.JSON(`["기본 네트워크 지식","Linux 기초"]`),
			TotalHours:    35,
			TotalLectures: 145,
			LastUpdated:   "2024년 10월",
			Curriculum:    datatypes.JSON(`[]`),
		},
		{
			Title:           "딥러닝 기초부터 실전까지",
			Instructor:      "신딥러닝",
			InstructorImage: "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=100&h=100&fit=crop",
			InstructorBio:   "네이버 AI Lab 연구원 출신. 다수의 AI 논문 저자.",
			Price:           119000,
			OriginalPrice:   169000,
			Rating:          4.8,
			ReviewCount:     923,
			StudentCount:    2876,
			Image:           "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=400&h=250&fit=crop",
			Tags:            `["NEW"]`,
			Category:        "ai",
			Description:     "딥러닝의 수학적 기초부터 PyTorch 실습까지 한 번에.",
			Level:           "중급",
			WhatYouLearn: datatypes.JSON(`["신경망의 수학적 기초","PyTorch 기본기","CNN/RNN 아키텍처","모델 학습과 평가"]`),
			Requirements: datatypes.JSON(`["Python 중급 문법","선형대수 기초"]`),
			TotalHours:    30,
			TotalLectures: 130,
			LastUpdated:   "2024년 11월",
			Curriculum:    datatypes.JSON(`[]`),
		},
	}

	if err := db.Create(&courses).Error; err != nil {
		log.Printf("Error seeding courses: %v", err)
		return
	}
	log.Println("Courses seeded.")
}
