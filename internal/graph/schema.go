package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
)

// Schema is the SDL served at /graphql.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Time

	type User {
		id: Int!
		name: String!
		email: String!
		isAdmin: Boolean!
		createdAt: Time!
		updatedAt: Time!
		posts: [Post!]!
	}

	type Post {
		id: Int!
		title: String!
		body: String!
		image: String!
		createdAt: Time!
		updatedAt: Time!
		author: User!
	}

	type LoginResponse {
		token: String!
		user: User!
	}

	type Query {
		me: User!
		posts: [Post!]!
		post(postId: Int!): Post!
	}

	type Mutation {
		signup(name: String!, email: String!, password: String!): User!
		login(email: String!, password: String!): LoginResponse!
		createPost(title: String!, body: String!, image: String!): Post!
		updatePost(postId: Int!, title: String!, body: String!, image: String!): Post!
		removePost(postId: Int!): String!
		updateProfile(id: Int!, email: String!, name: String!): User!
		removeProfile(id: Int!): String!
		changePassword(id: Int!, oldPassword: String!, newPassword: String!): User!
	}
`

// ParseSchema binds the SDL to the resolver.
func ParseSchema(resolver *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, resolver)
}
