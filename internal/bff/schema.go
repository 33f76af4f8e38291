package bff

const schema = `
	schema {
		query: Query
	}

	type Query {
		book(id: Int!): Book
		books: [Book!]!
	}

	type Book {
		id: Int!
		title: String!
		author: String!
		price: Int!
	}
`
