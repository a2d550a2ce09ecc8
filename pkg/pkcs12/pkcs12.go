package pkcs12

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"software.sslmate.com/src/go-pkcs12"
)

// ErrNoCertificate indica arquivo PKCS12 sem certificado
var ErrNoCertificate = errors.New("certificado não encontrado no arquivo PKCS12")

// ToPEM converte um certificado PKCS12 para blocos PEM
func ToPEM(pfxData []byte, password string) ([]*pem.Block, error) {
	privateKey, certificate, caCerts, err := pkcs12.DecodeChain(pfxData, password)
	if err != nil {
		return nil, err
	}

	var blocks []*pem.Block

	if certificate != nil {
		blocks = append(blocks, &pem.Block{
			Type:  "CERTIFICATE",
			Bytes: certificate.Raw,
		})
	}

	for _, cert := range caCerts {
		blocks = append(blocks, &pem.Block{
			Type:  "CERTIFICATE",
			Bytes: cert.Raw,
		})
	}

	if privateKey != nil {
		pkData, err := x509.MarshalPKCS8PrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, &pem.Block{
			Type:  "PRIVATE KEY",
			Bytes: pkData,
		})
	}

	return blocks, nil
}

// TLSCertificate monta o par chave/certificado para o servidor HTTPS a
// partir de um certificado A1 (.pfx)
func TLSCertificate(pfxData []byte, password string) (tls.Certificate, error) {
	blocks, err := ToPEM(pfxData, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("erro ao decodificar certificado: %w", err)
	}

	var certPEM, keyPEM []byte
	for _, b := range blocks {
		if b.Type == "PRIVATE KEY" {
			keyPEM = append(keyPEM, pem.EncodeToMemory(b)...)
		} else {
			certPEM = append(certPEM, pem.EncodeToMemory(b)...)
		}
	}
	if len(certPEM) == 0 || len(keyPEM) == 0 {
		return tls.Certificate{}, ErrNoCertificate
	}

	return tls.X509KeyPair(certPEM, keyPEM)
}

// LoadTLSConfig lê o arquivo .pfx e devolve a configuração TLS do servidor
func LoadTLSConfig(path, password string) (*tls.Config, error) {
	pfxData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler certificado: %w", err)
	}

	cert, err := TLSCertificate(pfxData, password)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
