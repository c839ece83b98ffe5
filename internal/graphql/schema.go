package graphql

// Schema is the full API surface served at /graphql.
const Schema = `
	type Post {
		id: ID!
		title: String!
		content: String!
		imageUrl: String!
		creator: User!
		createdAt: String!
		updatedAt: String!
	}

	type User {
		id: ID!
		name: String!
		email: String!
		status: String!
		posts: [Post!]!
	}

	input UserInputData {
		email: String!
		password: String!
		name: String!
	}

	input PostInputData {
		title: String!
		content: String!
		imageUrl: String!
	}

	type AuthData {
		token: String!
		userId: String!
	}

	type PostData {
		posts: [Post!]!
		totalItems: Int!
	}

	type RootQuery {
		login(email: String!, password: String!): AuthData!
		getPosts(page: Int): PostData!
		post(id: ID!): Post!
		getStatus: String!
	}

	type RootMutation {
		createUser(userInput: UserInputData!): User!
		createPost(postInput: PostInputData!): Post!
		updatePost(id: ID!, postInput: PostInputData!): Post!
		deletePost(id: ID!): Boolean!
		updateStatus(statusInput: String!): User!
	}

	schema {
		query: RootQuery
		mutation: RootMutation
	}
`
