/*
go-commerce exposes an e-commerce platform's REST API as tools which can be
called through the Model Context Protocol, over Streamable HTTP or stdio.
The upstream instance and credentials are supplied per-call by the caller,
not configured on the server.
*/
package commerce
