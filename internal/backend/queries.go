package backend

const (
	identityQuery = `
		query {
			me {
				id
				email
				name
				avatar
				createdAt
				role
			}
		}
	`

	loginMutation = `
		mutation Login($email: String!, $password: String!) {
			login(email: $email, password: $password) {
				access_token
				user {
					id
					email
					name
					avatar
					createdAt
					role
				}
			}
		}
	`

	registerMutation = `
		mutation Register($name: String!, $email: String!, $password: String!) {
			register(name: $name, email: $email, password: $password) {
				access_token
				user {
					id
					email
					name
					avatar
					createdAt
					role
				}
			}
		}
	`

	dashboardStatsQuery = `
		query DashboardStats {
			dashboardStats {
				totalTraffic
				totalLeads
				totalOrders
				totalRevenue
				leadConversionRate
				revenuePerVisitor
				recentLeads {
					id
					email
					createdAt
				}
				recentOrders {
					id
					amount
					status
					createdAt
				}
			}
		}
	`

	coursesQuery = `
		query {
			courses {
				id
				slug
				title
				description
				price
				level
				createdAt
			}
		}
	`

	courseQuery = `
		query Course($slug: String!) {
			course(slug: $slug) {
				id
				slug
				title
				description
				price
				level
				createdAt
			}
		}
	`

	createLessonMutation = `
		mutation CreateLesson($courseId: String!, $title: String!, $videoUrl: String, $avatar: String) {
			createLesson(courseId: $courseId, title: $title, videoUrl: $videoUrl, avatar: $avatar) {
				id
			}
		}
	`

	reorderLessonsMutation = `
		mutation ReorderLessons($ids: [String!]!) {
			reorderLessons(ids: $ids)
		}
	`

	updateLessonMutation = `
		mutation UpdateLesson($id: ID!, $order: Int, $title: String, $videoUrl: String, $avatar: String, $visible: Boolean) {
			updateLesson(id: $id, order: $order, title: $title, videoUrl: $videoUrl, avatar: $avatar, visible: $visible) {
				id
			}
		}
	`

	createQuizMutation = `
		mutation CreateQuiz($courseId: String!, $title: String!, $questions: String!) {
			createQuiz(courseId: $courseId, title: $title, questions: $questions)
		}
	`

	reorderQuizzesMutation = `
		mutation ReorderQuizzes($ids: [String!]!) {
			reorderQuizzes(ids: $ids)
		}
	`

	promotionsQuery = `
		query {
			promotions {
				id
				code
				discountPercentage
				expiresAt
			}
		}
	`

	createPromotionMutation = `
		mutation CreatePromotion($code: String!, $discountPercentage: Int!, $expiresAt: String!) {
			createPromotion(code: $code, discountPercentage: $discountPercentage, expiresAt: $expiresAt) {
				id
				code
				discountPercentage
				expiresAt
			}
		}
	`

	updatePromotionMutation = `
		mutation UpdatePromotion($id: ID!, $code: String, $discountPercentage: Int, $expiresAt: String) {
			updatePromotion(id: $id, code: $code, discountPercentage: $discountPercentage, expiresAt: $expiresAt) {
				id
				code
				discountPercentage
				expiresAt
			}
		}
	`

	deletePromotionMutation = `
		mutation DeletePromotion($id: ID!) {
			deletePromotion(id: $id)
		}
	`
)
